package validation

import (
	"fmt"
	"net/url"

	"github.com/respira-salud/respira-cli/internal/utils"
)

// ValidateMonth checks a year/month pair for the calendar endpoints.
func ValidateMonth(year, month int) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d out of range (1-12)", month)
	}
	return nil
}

// ValidateID checks a positive entity identifier.
func ValidateID(name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%s must be a positive id, got %d", name, id)
	}
	return nil
}

// ValidateSesion checks a session number against the 4-session cycle.
// Zero is allowed and means "no session filter".
func ValidateSesion(sesion int) error {
	if sesion < 0 || sesion > 4 {
		return fmt.Errorf("session number %d out of range (1-4)", sesion)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD calendar date string.
func ValidateDate(dateStr string) error {
	if !utils.ValidateDateFormat(dateStr) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
	}
	return nil
}

// ValidateAPIURL checks that the configured base URL is absolute http(s).
func ValidateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API URL must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("API URL %q has no host", raw)
	}
	return nil
}
