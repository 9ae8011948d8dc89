package calendario

import (
	"strings"
	"testing"
	"time"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

func TestSetDataExcludesCancelled(t *testing.T) {
	cancelled := models.Turno{
		ID:         1,
		Fecha:      "2025-06-05",
		HoraInicio: "08:00:00",
		HoraFin:    "08:30:00",
		Estado:     string(constants.TurnoCancelado),
	}
	available := models.Turno{
		ID:         2,
		Fecha:      "2025-06-05",
		HoraInicio: "09:00:00",
		HoraFin:    "09:30:00",
		Estado:     string(constants.TurnoDisponible),
	}

	m := New(2025, time.June)
	m.SetData(models.CalendarioData{Turnos: []models.Turno{cancelled, available}})

	// June 2025 starts on a Sunday, so day 5 is cell index 4.
	cell := m.Cells[4]
	if cell.Day != 5 {
		t.Fatalf("cell 4 day = %d, want 5", cell.Day)
	}
	if len(cell.Turnos) != 1 || cell.Turnos[0].ID != 2 {
		t.Fatalf("cell turnos = %+v, cancelled slot must not render", cell.Turnos)
	}
}

func TestViewDayExcludesCancelled(t *testing.T) {
	cancelled := models.Turno{
		ID:         1,
		Fecha:      "2025-06-05",
		HoraInicio: "08:00:00",
		HoraFin:    "08:30:00",
		Estado:     string(constants.TurnoCancelado),
	}
	available := models.Turno{
		ID:         2,
		Fecha:      "2025-06-05",
		HoraInicio: "09:00:00",
		HoraFin:    "09:30:00",
	}

	m := New(2025, time.June)
	m.SetData(models.CalendarioData{Turnos: []models.Turno{cancelled, available}})
	m.Cursor = 4

	for _, showAll := range []bool{false, true} {
		view := m.ViewDay(showAll)
		if strings.Contains(view, "08:00") {
			t.Errorf("ViewDay(showAll=%v) renders the cancelled slot:\n%s", showAll, view)
		}
		if !strings.Contains(view, "09:00") {
			t.Errorf("ViewDay(showAll=%v) dropped the available slot:\n%s", showAll, view)
		}
	}
}
