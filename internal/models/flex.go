package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/respira-salud/respira-cli/internal/logger"
)

// FlexBool decodes the heterogeneous boolean encodings the backend emits:
// true/false, 0/1, "0"/"1", "true"/"false" in any case, null and "".
// Unrecognized shapes are logged and decoded as false rather than failing the
// whole response, so upstream contract drift is visible without crashing views.
type FlexBool bool

// ParseFlexBool normalizes a decoded JSON value to a boolean. It returns an
// error for shapes outside the known wire contract.
func ParseFlexBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case float64:
		if b == 0 {
			return false, nil
		}
		if b == 1 {
			return true, nil
		}
		return false, fmt.Errorf("unrecognized boolean number %v", b)
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "", "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		}
		return false, fmt.Errorf("unrecognized boolean string %q", b)
	}
	return false, fmt.Errorf("unrecognized boolean type %T", v)
}

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b, err := ParseFlexBool(raw)
	if err != nil {
		logger.Warn("Unexpected boolean encoding from API", "value", string(data))
	}
	*f = FlexBool(b)
	return nil
}

func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Bool returns the normalized value.
func (f FlexBool) Bool() bool { return bool(f) }

// FlexInt decodes integers that may arrive as JSON numbers or numeric strings.
// Non-numeric values decode to zero; callers comparing against a required
// duration therefore exclude them (fail closed).
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*f = 0
		return nil
	case float64:
		*f = FlexInt(int(v))
		return nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			logger.Warn("Non-numeric integer from API", "value", v)
			*f = 0
			return nil
		}
		*f = FlexInt(n)
		return nil
	}
	logger.Warn("Unexpected integer encoding from API", "value", string(data))
	*f = 0
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int returns the normalized value.
func (f FlexInt) Int() int { return int(f) }
