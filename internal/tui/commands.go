package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

// Every fetch message carries the sequence number it was issued with. The
// update loop drops any message whose sequence is no longer the latest for
// its resource, so a slow stale response can never overwrite a newer one.

type estadisticasMsg struct {
	seq int
	est models.Estadisticas
	err error
}

type calendarioMsg struct {
	seq  int
	data models.CalendarioData
	err  error
}

type turnosMsg struct {
	seq    int
	turnos []models.Turno
	err    error
}

type pacientesMsg struct {
	seq       int
	pacientes []models.Paciente
	err       error
}

type terapeutasMsg struct {
	seq        int
	terapeutas []models.Terapeuta
	err        error
}

type tamizajesMsg struct {
	seq       int
	tamizajes []models.Tamizaje
	err       error
}

type usuariosMsg struct {
	seq      int
	usuarios []models.Usuario
	err      error
}

type progresoMsg struct {
	seq        int
	pacienteID int
	progreso   models.SesionProgreso
	err        error
}

type agendadoMsg struct {
	turnoID    int
	pacienteID int
	err        error
}

type statusExpiredMsg struct {
	token int
}

const fetchTimeout = constants.DefaultHTTPTimeout

func fetchEstadisticas(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		est, err := client.Estadisticas(ctx)
		return estadisticasMsg{seq: seq, est: est, err: err}
	}
}

func fetchCalendario(client *api.Client, seq, year, month, medicoID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := client.Calendario(ctx, year, month, medicoID, 0)
		return calendarioMsg{seq: seq, data: data, err: err}
	}
}

func fetchTurnos(client *api.Client, seq, medicoID, perPage int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		turnos, err := client.TurnosDisponibles(ctx, medicoID, perPage)
		return turnosMsg{seq: seq, turnos: turnos, err: err}
	}
}

func fetchPacientes(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		pacientes, err := client.PacientesRiesgoModerado(ctx)
		return pacientesMsg{seq: seq, pacientes: pacientes, err: err}
	}
}

func fetchTerapeutas(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		terapeutas, err := client.Terapeutas(ctx)
		return terapeutasMsg{seq: seq, terapeutas: terapeutas, err: err}
	}
}

func fetchTamizajes(client *api.Client, seq int, filtro models.TamizajeFiltro) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		tamizajes, err := client.Tamizajes(ctx, filtro)
		return tamizajesMsg{seq: seq, tamizajes: tamizajes, err: err}
	}
}

func fetchUsuarios(client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		usuarios, err := client.Usuarios(ctx)
		return usuariosMsg{seq: seq, usuarios: usuarios, err: err}
	}
}

func fetchProgreso(client *api.Client, seq, pacienteID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		progreso, err := client.IntervencionSesion(ctx, pacienteID)
		return progresoMsg{seq: seq, pacienteID: pacienteID, progreso: progreso, err: err}
	}
}

func agendarCita(client *api.Client, turnoID, pacienteID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		err := client.AgendarCita(ctx, turnoID, pacienteID)
		return agendadoMsg{turnoID: turnoID, pacienteID: pacienteID, err: err}
	}
}

func expireStatus(token int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusExpiredMsg{token: token}
	})
}
