package models

// Paciente is read-only reference data for the booking flow.
type Paciente struct {
	ID             int    `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	NumeroRegistro string `json:"numero_registro"`
	NivelRiesgo    string `json:"nivel_riesgo,omitempty"`
}

// Terapeuta is a clinician offering turnos.
type Terapeuta struct {
	ID             int    `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
}

// Usuario is an administrative dashboard account.
type Usuario struct {
	ID             int      `json:"id"`
	NombreCompleto string   `json:"nombre_completo"`
	Correo         string   `json:"correo"`
	Perfil         string   `json:"perfil"`
	Activo         FlexBool `json:"activo"`
}
