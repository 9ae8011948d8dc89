package stats

import "math"

// PctSum100 converts counts into integer percentage shares that always total
// exactly 100. Each share is rounded, then the last nonzero-total category
// absorbs the rounding remainder. A zero total yields all zeros.
func PctSum100(values []int) []int {
	out := make([]int, len(values))
	total := 0
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return out
	}

	sum := 0
	for i, v := range values {
		out[i] = int(math.Round(float64(v) / float64(total) * 100))
		sum += out[i]
	}
	// Absorb into the last nonzero category so a zero-count trailing
	// category can never go negative.
	last := len(values) - 1
	for last > 0 && values[last] == 0 {
		last--
	}
	out[last] += 100 - sum
	return out
}

// Breakdown is a labeled percentage share for a KPI card.
type Breakdown struct {
	Label string
	Count int
	Pct   int
}

// BuildBreakdown pairs labels with counts and normalized percentages.
// Labels and counts must be the same length; extra entries are ignored.
func BuildBreakdown(labels []string, counts []int) []Breakdown {
	n := len(labels)
	if len(counts) < n {
		n = len(counts)
	}
	pcts := PctSum100(counts[:n])
	out := make([]Breakdown, n)
	for i := 0; i < n; i++ {
		out[i] = Breakdown{Label: labels[i], Count: counts[i], Pct: pcts[i]}
	}
	return out
}
