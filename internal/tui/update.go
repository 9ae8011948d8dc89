package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panelModel.SetSize(msg.Width-4, msg.Height-6)
		m.calModel.SetSize(msg.Width-4, msg.Height-6)
		m.turnosModel.SetSize(msg.Width-4, msg.Height-6)
		m.tamizajeModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case statusExpiredMsg:
		if msg.token == m.statusToken {
			m.status = ""
		}
		return m, nil

	case estadisticasMsg:
		if msg.seq != m.seqEstadisticas {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("estadisticas", msg.err)
		}
		m.panelModel.SetData(msg.est)
		return m, nil

	case calendarioMsg:
		if msg.seq != m.seqCalendario {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("calendario", msg.err)
		}
		m.calModel.SetData(msg.data)
		return m, nil

	case turnosMsg:
		if msg.seq != m.seqTurnos {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("turnos", msg.err)
		}
		m.setTurnos(msg.turnos)
		return m, nil

	case pacientesMsg:
		if msg.seq != m.seqPacientes {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("pacientes", msg.err)
		}
		m.pacientes = msg.pacientes
		return m, nil

	case terapeutasMsg:
		if msg.seq != m.seqTerapeutas {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("terapeutas", msg.err)
		}
		m.terapeutas = msg.terapeutas
		return m, nil

	case tamizajesMsg:
		if msg.seq != m.seqTamizajes {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("tamizajes", msg.err)
		}
		m.tamizajeModel.SetTamizajes(msg.tamizajes)
		return m, nil

	case usuariosMsg:
		if msg.seq != m.seqUsuarios {
			return m, nil
		}
		if msg.err != nil {
			return m, m.handleFetchErr("usuarios", msg.err)
		}
		m.usuariosModel.SetUsuarios(msg.usuarios)
		return m, nil

	case progresoMsg:
		if msg.seq != m.seqProgreso {
			return m, nil
		}
		return m.handleProgreso(msg)

	case agendadoMsg:
		return m.handleAgendado(msg)
	}

	// Form-driven booking state gets the message before anything else.
	if m.state == constants.StateAgendarPaciente {
		return m.updateAgendarForm(msg, cmds)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeys(keyMsg)
	}

	// Delegate non-key messages to the list component (pagination, filter).
	if m.state == constants.StateTamizajes {
		var cmd tea.Cmd
		m.tamizajeModel, cmd = m.tamizajeModel.Update(msg)
		return m, cmd
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAgendarForm(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		// The completed form stays mounted until the progreso answer arrives;
		// fetch once, not on every message that passes through.
		if !m.progresoSent {
			m.progresoSent = true
			m.seqProgreso++
			cmds = append(cmds, fetchProgreso(m.client, m.seqProgreso, m.agendarForm.PacienteID))
		}
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleProgreso(msg progresoMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = m.previousState
		return m, m.handleFetchErr("progreso", msg.err)
	}
	m.progreso = msg.progreso

	if msg.progreso.DebeFinalizar.Bool() {
		m.state = m.previousState
		return m, m.setStatus("La intervencion debe finalizarse antes de agendar otra cita", true)
	}
	if msg.progreso.CitaPendiente.Bool() {
		m.state = m.previousState
		note := "El paciente ya tiene una cita pendiente"
		if info := msg.progreso.CitaPendienteInfo; info != nil {
			note = fmt.Sprintf("Cita pendiente: %s %s", info.Fecha, utils.FormatHora(info.HoraInicio))
		}
		return m, m.setStatus(note, true)
	}

	m.sesion = msg.progreso.NumeroSesion
	if m.sesion == 0 {
		// Display fallback; the server value wins whenever present.
		m.sesion = schedule.SessionInIntervention(msg.progreso.NumeroIntervencion)
	}

	m.state = constants.StateAgendarTurno
	m.seqTurnos++
	return m, fetchTurnos(m.client, m.seqTurnos, m.agendarForm.MedicoID, m.settings.PerPage)
}

func (m Model) handleAgendado(msg agendadoMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.handleFetchErr("agendar", msg.err)
	}
	m.state = constants.StateCitas
	m.seqCalendario++
	return m, tea.Batch(
		m.setStatus(fmt.Sprintf("Cita agendada (turno %d)", msg.turnoID), false),
		fetchCalendario(m.client, m.seqCalendario, m.calModel.Year, int(m.calModel.Month), m.settings.MedicoDefault),
	)
}

// setTurnos installs a fresh slot list, filtered for the current context.
// The booking flow additionally narrows by the session's required duration.
func (m *Model) setTurnos(turnos []models.Turno) {
	today, err := utils.GetTodayInTimezone(m.settings.Timezone)
	if err == nil {
		turnos = schedule.FilterFutureSlots(turnos, today)
	}
	if m.state == constants.StateAgendarTurno {
		turnos = schedule.FilterByRequiredDuration(turnos, m.sesion)
	}
	m.turnosModel.SetBuckets(schedule.GroupByDate(turnos))
}

func (m *Model) handleFetchErr(resource string, err error) tea.Cmd {
	if errors.Is(err, api.ErrUnauthorized) {
		m.sessionGone = true
		return m.setStatus("Sesion expirada. Sal y ejecuta 'respira login'.", true)
	}
	return m.setStatus(fmt.Sprintf("Error (%s): %v", resource, err), true)
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the tamizajes list is filtering, it owns the keyboard.
	if m.state == constants.StateTamizajes && m.tamizajeModel.Filtering() {
		var cmd tea.Cmd
		m.tamizajeModel, cmd = m.tamizajeModel.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.state == constants.StateDayDetail || m.state == constants.StateAgendarTurno ||
			m.state == constants.StateConfirmAgendar || m.state == constants.StateConfirmPurge {
			m.state = constants.StateCitas
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchTab(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab(-1)
	}

	switch m.state {
	case constants.StatePanel:
		if key.Matches(msg, m.keys.Refresh) {
			m.seqEstadisticas++
			return m, fetchEstadisticas(m.client, m.seqEstadisticas)
		}

	case constants.StateCitas:
		return m.handleCitasKeys(msg)

	case constants.StateDayDetail:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.state = constants.StateCitas
			m.showAllDay = false
		case key.Matches(msg, m.keys.ViewAll):
			m.showAllDay = !m.showAllDay
		case key.Matches(msg, m.keys.Agendar):
			return m.startAgendar()
		}
		return m, nil

	case constants.StateTurnos:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.turnosModel.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.turnosModel.MoveDown()
		case key.Matches(msg, m.keys.Refresh):
			m.seqTurnos++
			return m, fetchTurnos(m.client, m.seqTurnos, m.settings.MedicoDefault, m.settings.PerPage)
		case key.Matches(msg, m.keys.Agendar):
			return m.startAgendar()
		}
		return m, nil

	case constants.StateAgendarTurno:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.state = m.previousState
		case key.Matches(msg, m.keys.Up):
			m.turnosModel.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.turnosModel.MoveDown()
		case key.Matches(msg, m.keys.Enter):
			turno, ok := m.turnosModel.Selected()
			if !ok {
				return m, nil
			}
			if schedule.IsBooked(turno) {
				return m, m.setStatus("Ese turno ya esta ocupado", true)
			}
			m.turnoElegido = turno
			m.state = constants.StateConfirmAgendar
		}
		return m, nil

	case constants.StateConfirmAgendar:
		switch msg.String() {
		case "y", "s":
			return m, agendarCita(m.client, m.turnoElegido.ID, m.agendarForm.PacienteID)
		case "n", "esc":
			m.state = constants.StateAgendarTurno
		}
		return m, nil

	case constants.StateTamizajes:
		var cmd tea.Cmd
		if key.Matches(msg, m.keys.Refresh) {
			m.seqTamizajes++
			return m, fetchTamizajes(m.client, m.seqTamizajes, models.TamizajeFiltro{})
		}
		m.tamizajeModel, cmd = m.tamizajeModel.Update(msg)
		return m, cmd

	case constants.StateUsuarios:
		if key.Matches(msg, m.keys.Refresh) {
			m.seqUsuarios++
			return m, fetchUsuarios(m.client, m.seqUsuarios)
		}
	}

	return m, nil
}

// switchTab cycles the main views and refetches the target view's data, so
// each tab activation renders fresh state.
func (m Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	tabs := []constants.SessionState{
		constants.StatePanel,
		constants.StateCitas,
		constants.StateTurnos,
		constants.StateTamizajes,
		constants.StateUsuarios,
	}

	current := -1
	for i, s := range tabs {
		if m.state == s {
			current = i
		}
	}
	if current == -1 {
		// Sub-states (detail, booking) don't tab-cycle.
		return m, nil
	}

	next := (current + delta + len(tabs)) % len(tabs)
	m.state = tabs[next]

	switch m.state {
	case constants.StatePanel:
		m.seqEstadisticas++
		return m, fetchEstadisticas(m.client, m.seqEstadisticas)
	case constants.StateCitas:
		m.seqCalendario++
		return m, fetchCalendario(m.client, m.seqCalendario, m.calModel.Year, int(m.calModel.Month), m.settings.MedicoDefault)
	case constants.StateTurnos:
		m.seqTurnos++
		return m, fetchTurnos(m.client, m.seqTurnos, m.settings.MedicoDefault, m.settings.PerPage)
	case constants.StateTamizajes:
		m.seqTamizajes++
		return m, fetchTamizajes(m.client, m.seqTamizajes, models.TamizajeFiltro{})
	case constants.StateUsuarios:
		m.seqUsuarios++
		return m, fetchUsuarios(m.client, m.seqUsuarios)
	}
	return m, nil
}

func (m Model) handleCitasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.calModel.Move(-1)
	case key.Matches(msg, m.keys.Right):
		m.calModel.Move(1)
	case key.Matches(msg, m.keys.Up):
		m.calModel.Move(-7)
	case key.Matches(msg, m.keys.Down):
		m.calModel.Move(7)
	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.calModel.Selected(); ok {
			m.state = constants.StateDayDetail
			m.showAllDay = false
		}
	case key.Matches(msg, m.keys.PrevMonth):
		return m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.shiftMonth(1)
	case key.Matches(msg, m.keys.Refresh):
		m.seqCalendario++
		return m, fetchCalendario(m.client, m.seqCalendario, m.calModel.Year, int(m.calModel.Month), m.settings.MedicoDefault)
	case key.Matches(msg, m.keys.Agendar):
		return m.startAgendar()
	}
	return m, nil
}

func (m Model) shiftMonth(delta int) (tea.Model, tea.Cmd) {
	year, month := m.calModel.Year, int(m.calModel.Month)
	month += delta
	if month < 1 {
		month = 12
		year--
	}
	if month > 12 {
		month = 1
		year++
	}
	m.calModel.SetMonth(year, time.Month(month))
	m.seqCalendario++
	return m, fetchCalendario(m.client, m.seqCalendario, year, month, m.settings.MedicoDefault)
}

func (m Model) startAgendar() (tea.Model, tea.Cmd) {
	if len(m.pacientes) == 0 {
		return m, m.setStatus("No hay pacientes de riesgo moderado cargados", true)
	}

	m.previousState = m.state
	m.agendarForm = &AgendarFormModel{}
	m.form = newAgendarForm(m.agendarForm, m.pacientes, m.terapeutas)
	m.progresoSent = false
	m.state = constants.StateAgendarPaciente
	return m, m.form.Init()
}

func newAgendarForm(fm *AgendarFormModel, pacientes []models.Paciente, terapeutas []models.Terapeuta) *huh.Form {
	pacienteOpts := make([]huh.Option[int], len(pacientes))
	for i, p := range pacientes {
		pacienteOpts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.NombreCompleto, p.NumeroRegistro), p.ID)
	}

	terapeutaOpts := []huh.Option[int]{huh.NewOption("Todos", 0)}
	for _, t := range terapeutas {
		terapeutaOpts = append(terapeutaOpts, huh.NewOption(t.NombreCompleto, t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Paciente").
				Options(pacienteOpts...).
				Value(&fm.PacienteID),
			huh.NewSelect[int]().
				Title("Terapeuta").
				Options(terapeutaOpts...).
				Value(&fm.MedicoID),
		),
	)
}
