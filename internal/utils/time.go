package utils

import (
	"fmt"
	"time"

	"github.com/respira-salud/respira-cli/internal/constants"
)

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the given
// timezone. "Today" follows the configured timezone, not the system one, so
// the future-slot boundary stays put for staff in other zones.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// "Local" or empty returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDate parses a calendar date string (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateDateFormat checks if the string is a valid calendar date.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// FormatHora trims a HH:MM:SS slot time to HH:MM for display.
func FormatHora(hora string) string {
	if len(hora) >= 5 {
		return hora[:5]
	}
	return hora
}
