package schedule

import "testing"

func TestColorForClinicianDeterministic(t *testing.T) {
	first := ColorForClinician("Dra. García")
	for i := 0; i < 5; i++ {
		if got := ColorForClinician("Dra. García"); got != first {
			t.Fatalf("color changed between calls: %v then %v", first, got)
		}
	}
}

func TestColorForClinicianFromPalette(t *testing.T) {
	names := []string{"", "A", "Dra. García", "Dr. Pérez", "Lic. Sosa", "X Y Z"}
	for _, name := range names {
		c := ColorForClinician(name)
		found := false
		for _, p := range palette {
			if c == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ColorForClinician(%q) = %v, not in palette", name, c)
		}
	}
}

func TestColorForClinicianMemoized(t *testing.T) {
	ColorForClinician("memo-check")
	if _, ok := colorMemo["memo-check"]; !ok {
		t.Error("expected name to be memoized after lookup")
	}
}
