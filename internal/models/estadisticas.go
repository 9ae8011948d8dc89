package models

// Estadisticas holds the aggregate KPI counts for the dashboard panel.
// All figures are computed server-side; the client only renders them.
type Estadisticas struct {
	TotalPacientes       int            `json:"total_pacientes"`
	PacientesTamizados   int            `json:"pacientes_tamizados"`
	RiesgoBajo           int            `json:"riesgo_bajo"`
	RiesgoModerado       int            `json:"riesgo_moderado"`
	RiesgoAlto           int            `json:"riesgo_alto"`
	CitasAgendadas       int            `json:"citas_agendadas"`
	CitasCompletadas     int            `json:"citas_completadas"`
	Derivaciones         int            `json:"derivaciones"`
	ProtocolosActivos    int            `json:"protocolos_activos"`
	ProtocolosCerrados   int            `json:"protocolos_cerrados"`
	TamizajesInstrumento map[string]int `json:"tamizajes_por_instrumento"`
}
