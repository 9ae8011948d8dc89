package models

// Turno is a bookable clinician time slot. Instances are immutable once
// fetched; booking state only changes through a server round-trip.
type Turno struct {
	ID             int      `json:"id"`
	Fecha          string   `json:"fecha"`       // calendar date YYYY-MM-DD, no time component
	HoraInicio     string   `json:"hora_inicio"` // HH:MM:SS
	HoraFin        string   `json:"hora_fin"`
	Duracion       FlexInt  `json:"duracion"` // minutes
	MedicoID       int      `json:"medico_id"`
	Medico         string   `json:"medico,omitempty"`
	Ocupado        FlexBool `json:"ocupado"`
	Paciente       string   `json:"paciente,omitempty"`
	PacienteID     *int     `json:"paciente_id,omitempty"`
	EnlaceReunion  string   `json:"enlace_reunion,omitempty"`
	Estado         string   `json:"estado,omitempty"`
	NumeroRegistro string   `json:"numero_registro,omitempty"`
}
