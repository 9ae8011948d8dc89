package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// EstadoTurno represents the booking state of a turno as reported by the backend
type EstadoTurno string

// Instrumento identifies a screening questionnaire instrument
type Instrumento string

// NivelRiesgo represents a screening risk classification
type NivelRiesgo string

const (
	AppName           = "respira"
	KeyringTokenUser  = "api-token"
	DefaultConfigPath = "~/.config/respira/respira.db"
	Version           = "v1.2.0"

	// DateFormat is the calendar-date format used throughout the application (YYYY-MM-DD).
	// Dates are plain calendar dates, never instants; they are compared as strings.
	DateFormat = "2006-01-02"

	// TimeFormat is the slot time-of-day format (zero-padded HH:MM:SS).
	// Lexicographic order on this format matches chronological order.
	TimeFormat = "15:04:05"

	// API defaults
	DefaultAPIURL      = "https://respira.example.org/api"
	DefaultPerPage     = 500
	RequestIDHeader    = "X-Request-ID"
	DefaultHTTPTimeout = 30 * time.Second

	// Scheduling contract shared with the backend: the first session of an
	// intervention takes a 60-minute slot, follow-up sessions take 30 minutes.
	PrimeraSesionMin  = 60
	SesionSeguimiento = 30
	SesionesPorCiclo  = 4

	// Calendar display
	CalendarDayLimit = 15
	CalendarColumns  = 7

	// Turno states
	TurnoDisponible EstadoTurno = "disponible"
	TurnoOcupado    EstadoTurno = "ocupado"
	TurnoCancelado  EstadoTurno = "cancelado"

	// Screening instruments
	InstrumentoASQ   Instrumento = "ASQ"
	InstrumentoPHQ   Instrumento = "PHQ"
	InstrumentoGAD   Instrumento = "GAD"
	InstrumentoMBI   Instrumento = "MBI"
	InstrumentoAUDIT Instrumento = "AUDIT"

	// Risk classifications
	RiesgoBajo     NivelRiesgo = "bajo"
	RiesgoModerado NivelRiesgo = "moderado"
	RiesgoAlto     NivelRiesgo = "alto"
)

const (
	StatePanel SessionState = iota
	StateCitas
	StateTurnos
	StateTamizajes
	StateUsuarios
	StateDayDetail
	StateAgendarPaciente
	StateAgendarTurno
	StateConfirmAgendar
	StateConfirmPurge
)
