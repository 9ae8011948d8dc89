package cli

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	est, err := ctx.API.Estadisticas(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch statistics: %w", err)
	}

	fmt.Println("RESPIRA program overview")
	fmt.Printf("  Pacientes: %d (%d tamizados)\n", est.TotalPacientes, est.PacientesTamizados)
	fmt.Printf("  Citas: %d agendadas, %d completadas\n", est.CitasAgendadas, est.CitasCompletadas)
	fmt.Printf("  Protocolos: %d activos, %d cerrados\n", est.ProtocolosActivos, est.ProtocolosCerrados)
	fmt.Printf("  Derivaciones: %d\n", est.Derivaciones)

	fmt.Println("Riesgo:")
	breakdown := stats.BuildBreakdown(
		[]string{"bajo", "moderado", "alto"},
		[]int{est.RiesgoBajo, est.RiesgoModerado, est.RiesgoAlto},
	)
	for _, b := range breakdown {
		fmt.Printf("  %-9s %4d (%d%%)\n", b.Label, b.Count, b.Pct)
	}
	return nil
}
