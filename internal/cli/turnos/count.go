package turnos

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type CountCmd struct {
	Year   int `help:"Calendar year." required:""`
	Month  int `help:"Calendar month (1-12)." required:""`
	Medico int `help:"Filter by clinician id." optional:""`
}

func (c *CountCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateMonth(c.Year, c.Month); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	total, err := ctx.API.ContarDisponibles(reqCtx, c.Year, c.Month, c.Medico)
	if err != nil {
		return fmt.Errorf("failed to count turnos: %w", err)
	}
	fmt.Printf("%d available turnos in %04d-%02d\n", total, c.Year, c.Month)
	return nil
}
