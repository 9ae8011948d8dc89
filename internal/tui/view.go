package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StatePanel:
		content = docStyle.Render(m.panelModel.View())
	case constants.StateCitas:
		content = docStyle.Render(m.calModel.View())
	case constants.StateDayDetail:
		content = docStyle.Render(m.calModel.ViewDay(m.showAllDay))
	case constants.StateTurnos, constants.StateAgendarTurno:
		content = docStyle.Render(m.viewTurnos())
	case constants.StateTamizajes:
		content = docStyle.Render(m.tamizajeModel.View())
	case constants.StateUsuarios:
		content = docStyle.Render(m.usuariosModel.View())
	case constants.StateAgendarPaciente:
		content = m.form.View()
	case constants.StateConfirmAgendar:
		content = m.viewConfirmAgendar()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Panel", "Citas", "Turnos", "Tamizajes", "Usuarios"}
	states := []constants.SessionState{
		constants.StatePanel,
		constants.StateCitas,
		constants.StateTurnos,
		constants.StateTamizajes,
		constants.StateUsuarios,
	}
	active := m.activeTab()
	for i, title := range tabTitles {
		if states[i] == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// activeTab maps sub-states onto the tab they belong to.
func (m Model) activeTab() constants.SessionState {
	switch m.state {
	case constants.StateDayDetail, constants.StateAgendarPaciente,
		constants.StateAgendarTurno, constants.StateConfirmAgendar:
		return constants.StateCitas
	}
	return m.state
}

func (m Model) viewTurnos() string {
	if m.state == constants.StateAgendarTurno {
		header := warningStyle.Render(fmt.Sprintf(
			"Sesion %d de 4: se requiere un turno de %dm. Elige un horario.",
			m.sesion, schedule.RequiredDuration(m.sesion)))
		return header + "\n\n" + m.turnosModel.View()
	}
	return m.turnosModel.View()
}

func (m Model) viewConfirmAgendar() string {
	t := m.turnoElegido
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Confirmar cita"),
			"",
			fmt.Sprintf("%s  %s - %s  (%dm)  %s",
				t.Fecha, utils.FormatHora(t.HoraInicio), utils.FormatHora(t.HoraFin),
				t.Duracion.Int(), t.Medico),
			"",
			"[y] Confirmar",
			"[n] Cancelar",
		),
	)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return statusErrStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
