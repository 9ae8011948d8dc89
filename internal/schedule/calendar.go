package schedule

import (
	"time"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

// DayCell is one cell of the month grid. Blank cells pad the first and last
// week rows so the grid always forms complete Sunday-first weeks.
type DayCell struct {
	Blank    bool
	Day      int
	Fecha    string
	Turnos   []models.Turno // capped at constants.CalendarDayLimit
	Overflow int            // turnos beyond the cap, shown via "view all"
}

// BuildMonthGrid lays out a month as a Sunday-first 7-column grid. Each day
// cell carries its turnos with cancelled ones removed, de-duplicated by ID and
// capped for direct display; anything past the cap is reported as overflow.
func BuildMonthGrid(year int, month time.Month, slotsByDate map[string][]models.Turno) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, 0, constants.CalendarColumns*6)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		fecha := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
		turnos := dedupeByID(DropCancelled(slotsByDate[fecha]))

		cell := DayCell{Day: day, Fecha: fecha, Turnos: turnos}
		if len(turnos) > constants.CalendarDayLimit {
			cell.Overflow = len(turnos) - constants.CalendarDayLimit
			cell.Turnos = turnos[:constants.CalendarDayLimit]
		}
		cells = append(cells, cell)
	}

	for len(cells)%constants.CalendarColumns != 0 {
		cells = append(cells, DayCell{Blank: true})
	}
	return cells
}

// DropCancelled removes cancelled turnos. A cancelled slot is neither bookable
// nor booked, so it never renders in availability views.
func DropCancelled(turnos []models.Turno) []models.Turno {
	var out []models.Turno
	for _, t := range turnos {
		if t.Estado == string(constants.TurnoCancelado) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func dedupeByID(turnos []models.Turno) []models.Turno {
	if len(turnos) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(turnos))
	out := make([]models.Turno, 0, len(turnos))
	for _, t := range turnos {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
