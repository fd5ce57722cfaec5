package power

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Spline is a natural cubic spline over a spectrum table, used by the
// sharp-k variance path to evaluate P(k) between (and beyond) table nodes.
//
// Out-of-range queries are clamped to the tabulated k range, so the spline
// returns P(KMin) below the table and P(KMax) above it. Constant extension
// keeps extrapolated power non-negative where a free cubic tail could swing
// negative.
type Spline struct {
	cubic      interp.NaturalCubic
	kMin, kMax float64
}

// NewSpline fits a natural cubic spline through the table nodes.
func NewSpline(t *Table) (*Spline, error) {
	s := &Spline{kMin: t.KMin(), kMax: t.KMax()}
	if err := s.cubic.Fit(t.K, t.P); err != nil {
		return nil, fmt.Errorf("power: fit spline: %w", err)
	}
	return s, nil
}

// Eval returns the spline power at wavenumber k, clamping k to the tabulated
// range first.
func (s *Spline) Eval(k float64) float64 {
	if k < s.kMin {
		k = s.kMin
	} else if k > s.kMax {
		k = s.kMax
	}
	return s.cubic.Predict(k)
}

// EvalAll evaluates the spline over ks into dst and returns dst. If dst is
// nil a new slice is allocated; otherwise len(dst) must equal len(ks).
func (s *Spline) EvalAll(dst, ks []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(ks))
	}
	if len(dst) != len(ks) {
		panic("power: dst and ks must have same length")
	}
	for i, k := range ks {
		dst[i] = s.Eval(k)
	}
	return dst
}
