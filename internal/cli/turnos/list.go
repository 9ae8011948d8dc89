package turnos

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type ListCmd struct {
	Medico int `help:"Filter by clinician id." optional:""`
	Sesion int `help:"Filter slots by the duration this session number requires (1-4)." optional:""`
	All    bool `help:"Include past dates."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateSesion(c.Sesion); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	turnos, err := ctx.API.TurnosDisponibles(reqCtx, c.Medico, ctx.Settings.PerPage)
	if err != nil {
		return fmt.Errorf("failed to fetch turnos: %w", err)
	}

	if !c.All {
		turnos = schedule.FilterFutureSlots(turnos, ctx.Today())
	}
	turnos = schedule.FilterByRequiredDuration(turnos, c.Sesion)

	buckets := schedule.GroupByDate(turnos)
	if len(buckets) == 0 {
		fmt.Println("No turnos found")
		return nil
	}
	cli.PrintGrouped(buckets)
	return nil
}
