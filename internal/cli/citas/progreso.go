package citas

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/utils"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type ProgresoCmd struct {
	Paciente int `help:"Patient id." required:""`
}

func (c *ProgresoCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateID("paciente", c.Paciente); err != nil {
		return err
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	progreso, err := ctx.API.IntervencionSesion(reqCtx, c.Paciente)
	if err != nil {
		return fmt.Errorf("failed to fetch session progress: %w", err)
	}

	sesion := progreso.NumeroSesion
	if sesion == 0 {
		// Backend omitted the session number; reconstruct from the global
		// counter as a display fallback only.
		sesion = schedule.SessionInIntervention(progreso.NumeroIntervencion)
	}

	fmt.Printf("Intervencion: %d\n", progreso.NumeroIntervencion)
	fmt.Printf("Sesion: %d de 4 (requires %dm slot)\n", sesion, schedule.RequiredDuration(sesion))
	if progreso.DebeFinalizar.Bool() {
		fmt.Println("Estado: intervention must be closed before booking again")
	}
	if progreso.CitaPendiente.Bool() && progreso.CitaPendienteInfo != nil {
		t := progreso.CitaPendienteInfo
		fmt.Printf("Cita pendiente: %s %s con %s\n", t.Fecha, utils.FormatHora(t.HoraInicio), t.Medico)
	}
	if progreso.MensajeValidacion != "" {
		fmt.Printf("Nota: %s\n", progreso.MensajeValidacion)
	}
	return nil
}
