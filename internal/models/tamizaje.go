package models

// Tamizaje is a completed screening questionnaire result.
type Tamizaje struct {
	ID             int    `json:"id"`
	PacienteID     int    `json:"paciente_id"`
	Paciente       string `json:"paciente"`
	NumeroRegistro string `json:"numero_registro"`
	Instrumento    string `json:"instrumento"` // ASQ, PHQ, GAD, MBI, AUDIT
	Puntaje        int    `json:"puntaje"`
	NivelRiesgo    string `json:"nivel_riesgo"`
	Fecha          string `json:"fecha"`
}

// TamizajeFiltro narrows the screening-result listing.
type TamizajeFiltro struct {
	Instrumento string
	NivelRiesgo string
	Desde       string
	Hasta       string
}
