package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized is returned on a 401; the client's session-teardown
	// hook has already fired by the time callers see it.
	ErrUnauthorized = errors.New("session expired or invalid token")
	// ErrForbidden is returned on a 403.
	ErrForbidden = errors.New("not permitted for this account")
)

// APIError is a generic server-side failure (5xx or unexpected 4xx).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// ValidationError carries the field-level messages of a 422 response.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Message != "" {
			return e.Message
		}
		return "validation failed"
	}
	var parts []string
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
