package calendario

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/utils"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	weekdayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117")).Width(9)
	dayStyle     = lipgloss.NewStyle().Width(9).Height(2).Align(lipgloss.Left)
	blankStyle   = lipgloss.NewStyle().Width(9).Height(2)
	cursorStyle  = lipgloss.NewStyle().Width(9).Height(2).Background(lipgloss.Color("236")).Bold(true)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	ocupadoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	legendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model renders one month of turnos as a Sunday-first grid with a movable
// day cursor.
type Model struct {
	Year   int
	Month  time.Month
	Data   models.CalendarioData
	Cells  []schedule.DayCell
	Cursor int // index into Cells; always on a non-blank cell when possible
	Loaded bool

	width  int
	height int
}

func New(year int, month time.Month) Model {
	return Model{Year: year, Month: month}
}

// SetData rebuilds the grid from a fresh calendar payload.
func (m *Model) SetData(data models.CalendarioData) {
	m.Data = data
	m.Loaded = true

	byDate := make(map[string][]models.Turno)
	for _, bucket := range schedule.GroupByDate(data.Turnos) {
		byDate[bucket.Fecha] = bucket.Turnos
	}
	m.Cells = schedule.BuildMonthGrid(m.Year, m.Month, byDate)

	if m.Cursor >= len(m.Cells) || m.Cells[m.Cursor].Blank {
		m.Cursor = m.firstDay()
	}
}

// SetMonth points the component at another month; data arrives separately.
func (m *Model) SetMonth(year int, month time.Month) {
	m.Year = year
	m.Month = month
	m.Loaded = false
	m.Cells = nil
	m.Cursor = 0
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) firstDay() int {
	for i, c := range m.Cells {
		if !c.Blank {
			return i
		}
	}
	return 0
}

// Move shifts the cursor by delta cells, staying on non-blank cells.
func (m *Model) Move(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Cells) {
		return
	}
	if m.Cells[next].Blank {
		return
	}
	m.Cursor = next
}

// Selected returns the cell under the cursor.
func (m *Model) Selected() (schedule.DayCell, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Cells) {
		return schedule.DayCell{}, false
	}
	cell := m.Cells[m.Cursor]
	if cell.Blank {
		return schedule.DayCell{}, false
	}
	return cell, true
}

func (m Model) View() string {
	if !m.Loaded {
		return "Loading calendario..."
	}

	title := headerStyle.Render(fmt.Sprintf("%s %d", m.Month.String(), m.Year))
	legend := legendStyle.Render(fmt.Sprintf(
		"total %d · disponibles %d · ocupados %d · cancelados %d",
		m.Data.Total, m.Data.Disponibles, m.Data.Ocupados, m.Data.Cancelados))

	var b strings.Builder
	b.WriteString(title + "  " + legend + "\n\n")

	weekdays := []string{"Dom", "Lun", "Mar", "Mie", "Jue", "Vie", "Sab"}
	for _, wd := range weekdays {
		b.WriteString(weekdayStyle.Render(wd))
	}
	b.WriteString("\n")

	for row := 0; row*7 < len(m.Cells); row++ {
		var cols []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(m.Cells) {
				break
			}
			cols = append(cols, m.renderCell(idx))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCell(idx int) string {
	cell := m.Cells[idx]
	if cell.Blank {
		return blankStyle.Render("")
	}

	libres, ocupados := 0, 0
	for _, t := range cell.Turnos {
		if schedule.IsBooked(t) {
			ocupados++
		} else {
			libres++
		}
	}

	var counts string
	if libres > 0 {
		counts = countStyle.Render(fmt.Sprintf("%d✓", libres))
	}
	if ocupados > 0 {
		if counts != "" {
			counts += " "
		}
		counts += ocupadoStyle.Render(fmt.Sprintf("%d●", ocupados))
	}
	if cell.Overflow > 0 {
		counts += legendStyle.Render(fmt.Sprintf("+%d", cell.Overflow))
	}

	content := fmt.Sprintf("%2d\n%s", cell.Day, counts)
	if idx == m.Cursor {
		return cursorStyle.Render(content)
	}
	return dayStyle.Render(content)
}

// ViewDay renders the selected day's turnos. When showAll is false the list
// respects the display cap and points at the "view all" key for the rest.
func (m Model) ViewDay(showAll bool) string {
	cell, ok := m.Selected()
	if !ok {
		return "No day selected"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(cell.Fecha) + "\n\n")

	turnos := cell.Turnos
	if showAll {
		// The capped cell list plus overflow lives in the full month data.
		turnos = m.allForDate(cell.Fecha)
	}
	if len(turnos) == 0 {
		b.WriteString("No turnos on this day\n")
		return b.String()
	}

	for _, t := range turnos {
		color := schedule.ColorForClinician(t.Medico)
		line := fmt.Sprintf("%s - %s (%dm) %s",
			utils.FormatHora(t.HoraInicio), utils.FormatHora(t.HoraFin),
			t.Duracion.Int(), lipgloss.NewStyle().Foreground(color).Render(t.Medico))
		if schedule.IsBooked(t) {
			line += ocupadoStyle.Render(fmt.Sprintf("  ● %s", t.Paciente))
		} else {
			line += countStyle.Render("  ✓ disponible")
		}
		b.WriteString(line + "\n")
	}
	if !showAll && cell.Overflow > 0 {
		b.WriteString(legendStyle.Render(fmt.Sprintf("\n...and %d more, press v to view all\n", cell.Overflow)))
	}
	return b.String()
}

func (m Model) allForDate(fecha string) []models.Turno {
	var out []models.Turno
	seen := make(map[int]bool)
	for _, t := range schedule.DropCancelled(m.Data.Turnos) {
		if t.Fecha == fecha && !seen[t.ID] {
			seen[t.ID] = true
			out = append(out, t)
		}
	}
	for _, bucket := range schedule.GroupByDate(out) {
		return bucket.Turnos
	}
	return out
}
