package citas

import (
	"errors"
	"fmt"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type AgendarCmd struct {
	Turno    int `help:"Turno id to book." required:""`
	Paciente int `help:"Patient id." required:""`
}

func (c *AgendarCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateID("turno", c.Turno); err != nil {
		return err
	}
	if err := validation.ValidateID("paciente", c.Paciente); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	if err := ctx.API.AgendarCita(reqCtx, c.Turno, c.Paciente); err != nil {
		var verr *api.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("booking rejected: %w", verr)
		}
		return fmt.Errorf("failed to book cita: %w", err)
	}
	fmt.Printf("Cita booked: turno %d for paciente %d\n", c.Turno, c.Paciente)
	return nil
}
