package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/tui/components/calendario"
	"github.com/respira-salud/respira-cli/internal/tui/components/panel"
	"github.com/respira-salud/respira-cli/internal/tui/components/tamizajes"
	"github.com/respira-salud/respira-cli/internal/tui/components/turnoslist"
	"github.com/respira-salud/respira-cli/internal/tui/components/usuarios"
	"github.com/respira-salud/respira-cli/internal/utils"
)

// AgendarFormModel backs the huh form of the booking flow.
type AgendarFormModel struct {
	PacienteID int
	MedicoID   int
}

type Model struct {
	client   *api.Client
	settings models.Settings

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	panelModel    panel.Model
	calModel      calendario.Model
	turnosModel   turnoslist.Model
	tamizajeModel tamizajes.Model
	usuariosModel usuarios.Model

	// booking flow
	form         *huh.Form
	agendarForm  *AgendarFormModel
	progresoSent bool
	pacientes    []models.Paciente
	terapeutas   []models.Terapeuta
	progreso     models.SesionProgreso
	sesion       int
	turnoElegido models.Turno

	// stale-response guards, one counter per resource
	seqEstadisticas int
	seqCalendario   int
	seqTurnos       int
	seqPacientes    int
	seqTerapeutas   int
	seqTamizajes    int
	seqUsuarios     int
	seqProgreso     int

	status      string
	statusErr   bool
	statusToken int
	showAllDay  bool
	sessionGone bool

	quitting bool
	width    int
	height   int
}

func NewModel(client *api.Client, settings models.Settings) Model {
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now = time.Now()
	}

	return Model{
		client:        client,
		settings:      settings,
		state:         constants.StatePanel,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		panelModel:    panel.New(),
		calModel:      calendario.New(now.Year(), now.Month()),
		turnosModel:   turnoslist.New(),
		tamizajeModel: tamizajes.New(0, 0),
		usuariosModel: usuarios.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchEstadisticas(m.client, m.seqEstadisticas),
		fetchCalendario(m.client, m.seqCalendario, m.calModel.Year, int(m.calModel.Month), m.settings.MedicoDefault),
		fetchPacientes(m.client, m.seqPacientes),
		fetchTerapeutas(m.client, m.seqTerapeutas),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateCitas:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth, m.keys.Enter, m.keys.Agendar)
	case constants.StateDayDetail:
		keys = append(keys, m.keys.ViewAll, m.keys.Back)
	case constants.StateTurnos, constants.StatePanel:
		keys = append(keys, m.keys.Refresh)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter, m.keys.Back}
	actions := []key.Binding{m.keys.Agendar, m.keys.ViewAll, m.keys.PrevMonth, m.keys.NextMonth}
	return [][]key.Binding{global, navigation, actions}
}

// setStatus shows a transient message on the status line. The token ties the
// expiry tick to this particular message so an older tick cannot clear a
// newer message.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusErr = isErr
	m.statusToken++
	return expireStatus(m.statusToken)
}
