package utils

import (
	"testing"
	"time"
)

func TestGetTodayInTimezone(t *testing.T) {
	got, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("GetTodayInTimezone() error = %v", err)
	}
	want := time.Now().UTC().Format("2006-01-02")
	if got != want {
		t.Errorf("GetTodayInTimezone(UTC) = %s, want %s", got, want)
	}
}

func TestGetTodayInTimezoneInvalid(t *testing.T) {
	if _, err := GetTodayInTimezone("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty means local", timezone: "", wantErr: false},
		{name: "explicit local", timezone: "Local", wantErr: false},
		{name: "iana name", timezone: "America/Argentina/Buenos_Aires", wantErr: false},
		{name: "utc", timezone: "UTC", wantErr: false},
		{name: "garbage", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		dateStr string
		want    bool
	}{
		{"2025-06-01", true},
		{"2025-12-31", true},
		{"2025-13-01", false},
		{"2025-06-32", false},
		{"01-06-2025", false},
		{"2025/06/01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateDateFormat(tt.dateStr); got != tt.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.dateStr, got, tt.want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("") || !ValidateTimezone("Local") || !ValidateTimezone("UTC") {
		t.Error("expected empty, Local and UTC to be valid")
	}
	if ValidateTimezone("Nowhere/Nothing") {
		t.Error("expected unknown zone to be invalid")
	}
}

func TestFormatHora(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00"},
		{"14:30:00", "14:30"},
		{"09:00", "09:00"},
		{"9:00", "9:00"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatHora(tt.in); got != tt.want {
			t.Errorf("FormatHora(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
