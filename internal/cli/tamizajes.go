package cli

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type TamizajesCmd struct {
	Instrumento string `help:"Filter by instrument (ASQ, PHQ, GAD, MBI, AUDIT)." optional:""`
	Riesgo      string `help:"Filter by risk level (bajo, moderado, alto)." optional:""`
	Desde       string `help:"Start date (YYYY-MM-DD)." optional:""`
	Hasta       string `help:"End date (YYYY-MM-DD)." optional:""`
}

func (c *TamizajesCmd) Run(ctx *Context) error {
	if c.Desde != "" {
		if err := validation.ValidateDate(c.Desde); err != nil {
			return err
		}
	}
	if c.Hasta != "" {
		if err := validation.ValidateDate(c.Hasta); err != nil {
			return err
		}
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	tamizajes, err := ctx.API.Tamizajes(reqCtx, models.TamizajeFiltro{
		Instrumento: c.Instrumento,
		NivelRiesgo: c.Riesgo,
		Desde:       c.Desde,
		Hasta:       c.Hasta,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch tamizajes: %w", err)
	}
	if len(tamizajes) == 0 {
		fmt.Println("No tamizajes found")
		return nil
	}
	fmt.Printf("%-10s %-12s %-25s %-6s %6s  %s\n", "FECHA", "REGISTRO", "PACIENTE", "INSTR", "PUNTAJE", "RIESGO")
	for _, t := range tamizajes {
		fmt.Printf("%-10s %-12s %-25s %-6s %6d  %s\n",
			t.Fecha, t.NumeroRegistro, t.Paciente, t.Instrumento, t.Puntaje, t.NivelRiesgo)
	}
	return nil
}
