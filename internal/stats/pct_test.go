package stats

import (
	"reflect"
	"testing"
)

func TestPctSum100(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{name: "exact split", values: []int{30, 30, 40}, want: []int{30, 30, 40}},
		{name: "thirds absorb remainder in last", values: []int{1, 1, 1}, want: []int{33, 33, 34}},
		{name: "all zero stays zero", values: []int{0, 0, 0}, want: []int{0, 0, 0}},
		{name: "single category", values: []int{7}, want: []int{100}},
		{name: "skewed", values: []int{1, 999}, want: []int{0, 100}},
		{name: "empty", values: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PctSum100(tt.values)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PctSum100(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestPctSum100TrailingZeroCategory(t *testing.T) {
	// Six equal categories round to 17 each (sum 102); the remainder must be
	// absorbed by the last nonzero category, never pushing the empty trailing
	// one negative.
	got := PctSum100([]int{1, 1, 1, 1, 1, 1, 0})
	if got[6] != 0 {
		t.Errorf("empty category share = %d, want 0", got[6])
	}
	sum := 0
	for _, p := range got {
		if p < 0 {
			t.Errorf("negative share in %v", got)
		}
		sum += p
	}
	if sum != 100 {
		t.Errorf("shares %v sum to %d", got, sum)
	}
}

func TestPctSum100AlwaysTotals100(t *testing.T) {
	cases := [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{3, 6, 9},
		{17, 23, 5, 55},
		{2, 2, 3},
	}
	for _, values := range cases {
		got := PctSum100(values)
		sum := 0
		for _, p := range got {
			sum += p
		}
		if sum != 100 {
			t.Errorf("PctSum100(%v) = %v, sums to %d", values, got, sum)
		}
	}
}

func TestBuildBreakdown(t *testing.T) {
	got := BuildBreakdown([]string{"leve", "moderado", "severo"}, []int{1, 1, 2})
	if len(got) != 3 {
		t.Fatalf("BuildBreakdown() returned %d entries, want 3", len(got))
	}
	if got[0].Label != "leve" || got[0].Count != 1 || got[0].Pct != 25 {
		t.Errorf("first entry = %+v, want leve/1/25", got[0])
	}
	if got[2].Pct != 50 {
		t.Errorf("last entry pct = %d, want 50", got[2].Pct)
	}
}

func TestBuildBreakdownMismatchedLengths(t *testing.T) {
	got := BuildBreakdown([]string{"a", "b", "c"}, []int{10})
	if len(got) != 1 {
		t.Errorf("BuildBreakdown() returned %d entries, want 1", len(got))
	}
}
