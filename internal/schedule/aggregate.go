package schedule

import (
	"sort"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

// DayBucket groups a calendar date's turnos, ordered by start time ascending.
type DayBucket struct {
	Fecha  string
	Turnos []models.Turno
}

// FilterFutureSlots retains turnos dated on or after today. Dates are plain
// calendar strings (YYYY-MM-DD) compared lexicographically; no timezone
// conversion happens here, which keeps the boundary day stable across zones.
func FilterFutureSlots(turnos []models.Turno, today string) []models.Turno {
	var out []models.Turno
	for _, t := range turnos {
		if t.Fecha >= today {
			out = append(out, t)
		}
	}
	return out
}

// RequiredDuration returns the slot duration in minutes the given session
// number requires: the first session of an intervention needs a full hour,
// sessions 2-4 need half an hour. Zero means no requirement.
func RequiredDuration(numeroSesion int) int {
	if numeroSesion <= 0 {
		return 0
	}
	if numeroSesion == 1 {
		return constants.PrimeraSesionMin
	}
	return constants.SesionSeguimiento
}

// FilterByRequiredDuration keeps only turnos whose duration matches what the
// session number requires. An unset session number disables the filter.
// Non-numeric durations decode to zero at the model boundary and therefore
// never match a requirement: a malformed slot is never offered for booking.
func FilterByRequiredDuration(turnos []models.Turno, numeroSesion int) []models.Turno {
	required := RequiredDuration(numeroSesion)
	if required == 0 {
		return turnos
	}
	var out []models.Turno
	for _, t := range turnos {
		if t.Duracion.Int() == required {
			out = append(out, t)
		}
	}
	return out
}

// GroupByDate buckets turnos by their exact date string. Buckets come back
// chronologically ascending and each bucket's turnos sorted by start time.
// Zero-padded HH:MM:SS sorts lexicographically in chronological order.
func GroupByDate(turnos []models.Turno) []DayBucket {
	byDate := make(map[string][]models.Turno)
	for _, t := range turnos {
		byDate[t.Fecha] = append(byDate[t.Fecha], t)
	}

	dates := make([]string, 0, len(byDate))
	for fecha := range byDate {
		dates = append(dates, fecha)
	}
	sort.Strings(dates)

	buckets := make([]DayBucket, 0, len(dates))
	for _, fecha := range dates {
		day := byDate[fecha]
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].HoraInicio < day[j].HoraInicio
		})
		buckets = append(buckets, DayBucket{Fecha: fecha, Turnos: day})
	}
	return buckets
}

// IsBooked reports whether a turno should display as booked. The occupied
// flag alone is not enough: a booked slot with no patient attached is a
// data-quality artifact and renders as available.
func IsBooked(t models.Turno) bool {
	return t.Ocupado.Bool() && t.Paciente != ""
}

// SessionInIntervention maps a global session counter onto the 1..4 cycle.
// Used only as a fallback when the backend omits numero_sesion; the server's
// value always wins when present.
func SessionInIntervention(globalNro int) int {
	if globalNro <= 0 {
		return 1
	}
	return ((globalNro - 1) % constants.SesionesPorCiclo) + 1
}
