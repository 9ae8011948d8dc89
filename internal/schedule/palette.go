package schedule

import "github.com/charmbracelet/lipgloss"

// palette is the fixed set of clinician colors. Assignment is deterministic
// per name so a terapeuta keeps the same color everywhere in a session.
var palette = []lipgloss.Color{
	lipgloss.Color("81"),  // cyan
	lipgloss.Color("212"), // pink
	lipgloss.Color("114"), // green
	lipgloss.Color("214"), // orange
	lipgloss.Color("141"), // purple
	lipgloss.Color("228"), // yellow
	lipgloss.Color("203"), // coral
	lipgloss.Color("75"),  // blue
}

var colorMemo = make(map[string]lipgloss.Color)

// ColorForClinician maps a clinician name onto the palette with a rolling
// hash, memoized for the lifetime of the view. The TUI's single update queue
// is the only caller, so the memo map needs no locking.
func ColorForClinician(name string) lipgloss.Color {
	if c, ok := colorMemo[name]; ok {
		return c
	}
	hash := 0
	for _, r := range name {
		hash = hash*31 + int(r)
	}
	if hash < 0 {
		hash = -hash
	}
	c := palette[hash%len(palette)]
	colorMemo[name] = c
	return c
}
