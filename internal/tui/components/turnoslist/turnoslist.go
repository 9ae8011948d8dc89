package turnoslist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/utils"
)

var (
	dateStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	cursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
	libreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	ocupadoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// entry is one selectable row: a turno within its date bucket.
type entry struct {
	fecha string
	turno models.Turno
}

// Model is a date-grouped availability list with a movable cursor.
type Model struct {
	Buckets []schedule.DayBucket
	Loaded  bool

	entries []entry
	cursor  int
	width   int
	height  int
}

func New() Model {
	return Model{}
}

// SetBuckets replaces the list contents with freshly grouped turnos.
func (m *Model) SetBuckets(buckets []schedule.DayBucket) {
	m.Buckets = buckets
	m.Loaded = true
	m.entries = m.entries[:0]
	for _, b := range buckets {
		for _, t := range b.Turnos {
			m.entries = append(m.entries, entry{fecha: b.Fecha, turno: t})
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.entries)-1 {
		m.cursor++
	}
}

// Selected returns the turno under the cursor.
func (m *Model) Selected() (models.Turno, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.Turno{}, false
	}
	return m.entries[m.cursor].turno, true
}

func (m Model) View() string {
	if !m.Loaded {
		return "Loading turnos..."
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No turnos available")
	}

	var b strings.Builder
	idx := 0
	for _, bucket := range m.Buckets {
		b.WriteString(dateStyle.Render(bucket.Fecha) + "\n")
		for _, t := range bucket.Turnos {
			color := schedule.ColorForClinician(t.Medico)
			line := fmt.Sprintf("  %s - %s (%dm) %s",
				utils.FormatHora(t.HoraInicio), utils.FormatHora(t.HoraFin),
				t.Duracion.Int(),
				lipgloss.NewStyle().Foreground(color).Render(t.Medico))
			if schedule.IsBooked(t) {
				line += ocupadoStyle.Render(fmt.Sprintf(" ● %s", t.Paciente))
			} else {
				line += libreStyle.Render(" ✓")
			}
			if idx == m.cursor {
				line = cursorStyle.Render(line)
			}
			b.WriteString(line + "\n")
			idx++
		}
	}
	return b.String()
}
