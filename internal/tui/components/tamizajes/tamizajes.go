package tamizajes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/respira-salud/respira-cli/internal/models"
)

// Item adapts a tamizaje for the bubbles list.
type Item struct {
	Tamizaje models.Tamizaje
}

func (i Item) Title() string {
	return fmt.Sprintf("%s · %s", i.Tamizaje.Paciente, i.Tamizaje.Instrumento)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · puntaje %d · riesgo %s",
		i.Tamizaje.Fecha, i.Tamizaje.Puntaje, i.Tamizaje.NivelRiesgo)
}

func (i Item) FilterValue() string {
	return i.Tamizaje.Paciente + " " + i.Tamizaje.Instrumento + " " + i.Tamizaje.NivelRiesgo
}

type Model struct {
	list   list.Model
	Loaded bool
}

func New(width, height int) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	l.Title = "Tamizajes"
	l.SetShowStatusBar(false)
	return Model{list: l}
}

func (m *Model) SetTamizajes(tamizajes []models.Tamizaje) {
	items := make([]list.Item, len(tamizajes))
	for i, t := range tamizajes {
		items[i] = Item{Tamizaje: t}
	}
	m.list.SetItems(items)
	m.Loaded = true
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.Loaded {
		return "Loading tamizajes..."
	}
	return m.list.View()
}

// Filtering reports whether the inner list is in filter-input mode, so the
// parent model can keep global keys out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
