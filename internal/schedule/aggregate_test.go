package schedule

import (
	"encoding/json"
	"testing"

	"github.com/respira-salud/respira-cli/internal/models"
)

func turno(id int, fecha, inicio string, duracion int) models.Turno {
	return models.Turno{
		ID:         id,
		Fecha:      fecha,
		HoraInicio: inicio,
		Duracion:   models.FlexInt(duracion),
	}
}

func TestFilterFutureSlots(t *testing.T) {
	turnos := []models.Turno{
		turno(1, "2025-05-31", "09:00:00", 30),
		turno(2, "2025-06-01", "09:00:00", 30),
		turno(3, "2025-06-02", "09:00:00", 30),
	}

	got := FilterFutureSlots(turnos, "2025-06-01")
	if len(got) != 2 {
		t.Fatalf("FilterFutureSlots() returned %d turnos, want 2", len(got))
	}
	// A slot dated exactly today is retained.
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("FilterFutureSlots() kept ids %d,%d, want 2,3", got[0].ID, got[1].ID)
	}
}

func TestFilterFutureSlotsEmpty(t *testing.T) {
	if got := FilterFutureSlots(nil, "2025-06-01"); len(got) != 0 {
		t.Errorf("FilterFutureSlots(nil) = %v, want empty", got)
	}
}

func TestRequiredDuration(t *testing.T) {
	tests := []struct {
		name   string
		sesion int
		want   int
	}{
		{name: "first session needs an hour", sesion: 1, want: 60},
		{name: "second session needs half an hour", sesion: 2, want: 30},
		{name: "third session", sesion: 3, want: 30},
		{name: "fourth session", sesion: 4, want: 30},
		{name: "unset session disables the filter", sesion: 0, want: 0},
		{name: "negative session disables the filter", sesion: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiredDuration(tt.sesion); got != tt.want {
				t.Errorf("RequiredDuration(%d) = %d, want %d", tt.sesion, got, tt.want)
			}
		})
	}
}

func TestFilterByRequiredDuration(t *testing.T) {
	turnos := []models.Turno{
		turno(1, "2025-06-01", "09:00:00", 30),
		turno(2, "2025-06-01", "10:00:00", 60),
		turno(3, "2025-06-01", "11:00:00", 0), // malformed duration, decoded to zero
	}

	for sesion := 1; sesion <= 4; sesion++ {
		want := 30
		if sesion == 1 {
			want = 60
		}
		got := FilterByRequiredDuration(turnos, sesion)
		for _, tr := range got {
			if tr.Duracion.Int() != want {
				t.Errorf("session %d: kept duration %d, want only %d", sesion, tr.Duracion.Int(), want)
			}
		}
		if len(got) != 1 {
			t.Errorf("session %d: kept %d turnos, want 1", sesion, len(got))
		}
	}

	// No session number: no filter, malformed slots included as-is.
	if got := FilterByRequiredDuration(turnos, 0); len(got) != 3 {
		t.Errorf("unfiltered: kept %d turnos, want 3", len(got))
	}
}

func TestGroupByDateOrdering(t *testing.T) {
	turnos := []models.Turno{
		turno(1, "2025-06-03", "09:00:00", 30),
		turno(2, "2025-06-01", "14:00:00", 30),
		turno(3, "2025-06-01", "08:00:00", 30),
		turno(4, "2025-06-02", "10:00:00", 30),
		turno(5, "2025-06-01", "10:30:00", 30),
	}

	buckets := GroupByDate(turnos)
	if len(buckets) != 3 {
		t.Fatalf("GroupByDate() returned %d buckets, want 3", len(buckets))
	}

	for i := 1; i < len(buckets); i++ {
		if buckets[i-1].Fecha >= buckets[i].Fecha {
			t.Errorf("bucket dates not strictly increasing: %s then %s", buckets[i-1].Fecha, buckets[i].Fecha)
		}
	}
	for _, b := range buckets {
		for i := 1; i < len(b.Turnos); i++ {
			if b.Turnos[i-1].HoraInicio > b.Turnos[i].HoraInicio {
				t.Errorf("%s: start times not non-decreasing: %s then %s",
					b.Fecha, b.Turnos[i-1].HoraInicio, b.Turnos[i].HoraInicio)
			}
		}
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if got := GroupByDate(nil); len(got) != 0 {
		t.Errorf("GroupByDate(nil) = %v, want empty", got)
	}
}

// The full pipeline: future filter, session-duration filter, grouping.
func TestAggregationScenario(t *testing.T) {
	turnos := []models.Turno{
		turno(1, "2025-06-02", "09:00:00", 30),
		turno(2, "2025-06-01", "10:00:00", 60),
		turno(3, "2025-06-01", "08:00:00", 30),
	}

	filtered := FilterFutureSlots(turnos, "2025-06-01")
	filtered = FilterByRequiredDuration(filtered, 2) // requires 30 min
	buckets := GroupByDate(filtered)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if buckets[0].Fecha != "2025-06-01" || len(buckets[0].Turnos) != 1 || buckets[0].Turnos[0].ID != 3 {
		t.Errorf("first bucket = %+v, want single turno 3 on 2025-06-01", buckets[0])
	}
	if buckets[1].Fecha != "2025-06-02" || len(buckets[1].Turnos) != 1 || buckets[1].Turnos[0].ID != 1 {
		t.Errorf("second bucket = %+v, want single turno 1 on 2025-06-02", buckets[1])
	}
}

func TestIsBooked(t *testing.T) {
	tests := []struct {
		name     string
		ocupado  string // raw JSON for the ocupado field
		paciente string
		want     bool
	}{
		{name: "bool true with patient", ocupado: `true`, paciente: "Ana", want: true},
		{name: "number 1 with patient", ocupado: `1`, paciente: "Ana", want: true},
		{name: "string 1 with patient", ocupado: `"1"`, paciente: "Ana", want: true},
		{name: "string true with patient", ocupado: `"true"`, paciente: "Ana", want: true},
		{name: "string True with patient", ocupado: `"True"`, paciente: "Ana", want: true},
		{name: "bool false", ocupado: `false`, paciente: "Ana", want: false},
		{name: "number 0", ocupado: `0`, paciente: "Ana", want: false},
		{name: "string 0", ocupado: `"0"`, paciente: "Ana", want: false},
		{name: "string false", ocupado: `"false"`, paciente: "Ana", want: false},
		{name: "null", ocupado: `null`, paciente: "Ana", want: false},
		{name: "empty string", ocupado: `""`, paciente: "Ana", want: false},
		{name: "booked without patient is not booked", ocupado: `true`, paciente: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"id":1,"fecha":"2025-06-01","ocupado":` + tt.ocupado + `}`)
			var tr models.Turno
			if err := json.Unmarshal(raw, &tr); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tr.Paciente = tt.paciente
			if got := IsBooked(tr); got != tt.want {
				t.Errorf("IsBooked(ocupado=%s, paciente=%q) = %v, want %v", tt.ocupado, tt.paciente, got, tt.want)
			}
		})
	}
}

func TestSessionInIntervention(t *testing.T) {
	tests := []struct {
		global int
		want   int
	}{
		{global: 1, want: 1},
		{global: 2, want: 2},
		{global: 4, want: 4},
		{global: 5, want: 1},
		{global: 8, want: 4},
		{global: 9, want: 1},
		{global: 0, want: 1},
	}

	for _, tt := range tests {
		if got := SessionInIntervention(tt.global); got != tt.want {
			t.Errorf("SessionInIntervention(%d) = %d, want %d", tt.global, got, tt.want)
		}
	}
}
