package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/stats"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(2)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	bigNumberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the KPI dashboard panel.
type Model struct {
	Est    models.Estadisticas
	Loaded bool

	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetData(est models.Estadisticas) {
	m.Est = est
	m.Loaded = true
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	if !m.Loaded {
		return "Loading estadisticas..."
	}
	est := m.Est

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Pacientes", fmt.Sprintf("%d", est.TotalPacientes),
			fmt.Sprintf("%d tamizados", est.PacientesTamizados)),
		card("Citas", fmt.Sprintf("%d", est.CitasAgendadas),
			fmt.Sprintf("%d completadas", est.CitasCompletadas)),
		card("Protocolos", fmt.Sprintf("%d", est.ProtocolosActivos),
			fmt.Sprintf("%d cerrados", est.ProtocolosCerrados)),
		card("Derivaciones", fmt.Sprintf("%d", est.Derivaciones), ""),
	)

	riesgo := stats.BuildBreakdown(
		[]string{"bajo", "moderado", "alto"},
		[]int{est.RiesgoBajo, est.RiesgoModerado, est.RiesgoAlto},
	)
	var rb strings.Builder
	rb.WriteString(cardTitleStyle.Render("Riesgo") + "\n")
	for _, b := range riesgo {
		rb.WriteString(fmt.Sprintf("%-9s %s %3d%%  (%d)\n", b.Label, bar(b.Pct), b.Pct, b.Count))
	}

	var ib strings.Builder
	if len(est.TamizajesInstrumento) > 0 {
		ib.WriteString(cardTitleStyle.Render("Tamizajes por instrumento") + "\n")
		for _, inst := range []string{"ASQ", "PHQ", "GAD", "MBI", "AUDIT"} {
			if n, ok := est.TamizajesInstrumento[inst]; ok {
				ib.WriteString(fmt.Sprintf("%-6s %d\n", inst, n))
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", rb.String(), ib.String())
}

func card(title, number, sub string) string {
	content := cardTitleStyle.Render(title) + "\n" +
		bigNumberStyle.Render(number)
	if sub != "" {
		content += "\n" + labelStyle.Render(sub)
	}
	return cardStyle.Render(content)
}

func bar(pct int) string {
	filled := pct / 5
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}
