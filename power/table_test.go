package power

import (
	"errors"
	"math"
	"testing"
)

func TestNewTableValid(t *testing.T) {
	k := []float64{0.01, 0.1, 1, 10}
	p := []float64{1000, 100, 1, 0.01}

	tab, err := NewTable(k, p)
	if err != nil {
		t.Fatalf("NewTable error: %v", err)
	}

	if tab.Len() != 4 {
		t.Fatalf("Len=%d, want 4", tab.Len())
	}
	if tab.KMin() != 0.01 || tab.KMax() != 10 {
		t.Fatalf("range [%v, %v], want [0.01, 10]", tab.KMin(), tab.KMax())
	}

	// The table must hold copies, not the caller's slices.
	k[0] = 99
	p[0] = 99
	if tab.K[0] == 99 || tab.P[0] == 99 {
		t.Fatal("table aliases caller slices")
	}
}

func TestNewTableRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		k, p []float64
	}{
		{"mismatched lengths", []float64{1, 2}, []float64{1}},
		{"too short", []float64{1}, []float64{1}},
		{"negative wavenumber", []float64{-1, 2}, []float64{1, 1}},
		{"negative power", []float64{1, 2}, []float64{1, -1}},
		{"nan wavenumber", []float64{math.NaN(), 2}, []float64{1, 1}},
		{"nan power", []float64{1, 2}, []float64{1, math.NaN()}},
		{"duplicate wavenumber", []float64{1, 1}, []float64{1, 1}},
		{"decreasing wavenumber", []float64{2, 1}, []float64{1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.k, tc.p)
			if !errors.Is(err, ErrBadTable) {
				t.Fatalf("expected ErrBadTable, got %v", err)
			}
		})
	}
}
