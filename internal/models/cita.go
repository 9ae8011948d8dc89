package models

// SesionProgreso reports where a (patient, clinician) pair stands in the
// 4-session intervention cycle. It is computed server-side; the client only
// branches display on it.
type SesionProgreso struct {
	NumeroIntervencion int      `json:"numero_intervencion"`
	NumeroSesion       int      `json:"numero_sesion"`
	DebeFinalizar      FlexBool `json:"debe_finalizar"`
	CitaPendiente      FlexBool `json:"cita_pendiente"`
	CitaPendienteInfo  *Turno   `json:"cita_pendiente_info,omitempty"`
	MensajeValidacion  string   `json:"mensaje_validacion,omitempty"`
}

// CalendarioData is the month view payload: the month's turnos plus aggregate
// per-status counts.
type CalendarioData struct {
	Turnos      []Turno `json:"turnos"`
	Total       int     `json:"total"`
	Disponibles int     `json:"disponibles"`
	Ocupados    int     `json:"ocupados"`
	Cancelados  int     `json:"cancelados"`
}
