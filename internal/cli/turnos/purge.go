package turnos

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/logger"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type PurgeCmd struct {
	Year   int  `help:"Calendar year." required:""`
	Month  int  `help:"Calendar month (1-12)." required:""`
	Medico int  `help:"Restrict to one clinician." optional:""`
	Yes    bool `help:"Skip the confirmation prompt."`
}

func (c *PurgeCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateMonth(c.Year, c.Month); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	total, err := ctx.API.ContarDisponibles(reqCtx, c.Year, c.Month, c.Medico)
	if err != nil {
		return fmt.Errorf("failed to count turnos: %w", err)
	}
	if total == 0 {
		fmt.Printf("No available turnos in %04d-%02d, nothing to delete\n", c.Year, c.Month)
		return nil
	}

	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %d available turnos in %04d-%02d?", total, c.Year, c.Month)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	deleted, err := ctx.API.EliminarTodos(reqCtx, c.Year, c.Month, c.Medico)
	if err != nil {
		return fmt.Errorf("failed to delete turnos: %w", err)
	}
	logger.Info("Bulk turno delete", "year", c.Year, "month", c.Month, "medico", c.Medico, "deleted", deleted)
	fmt.Printf("Deleted %d turnos\n", deleted)
	return nil
}
