package numint

import (
	"math"
	"testing"
)

func TestCumTrapzConstant(t *testing.T) {
	x := []float64{0, 1, 2, 4}
	f := []float64{3, 3, 3, 3}
	got := CumTrapz(nil, x, f, 0)
	want := []float64{0, 3, 6, 12}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("CumTrapz[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCumTrapzLinear(t *testing.T) {
	// Integral of f(x) = 2x from 0 is x^2; the trapezoid rule is exact for
	// linear integrands.
	x := []float64{0, 0.5, 1, 2, 3}
	f := make([]float64, len(x))
	for i, xi := range x {
		f[i] = 2 * xi
	}
	got := CumTrapz(nil, x, f, 0)
	for i, xi := range x {
		if math.Abs(got[i]-xi*xi) > 1e-12 {
			t.Errorf("CumTrapz[%d] = %v, want %v", i, got[i], xi*xi)
		}
	}
}

func TestCumTrapzInitialSeedsFirstElementOnly(t *testing.T) {
	x := []float64{1, 2}
	f := []float64{1, 1}
	got := CumTrapz(nil, x, f, 10)
	if got[0] != 10 {
		t.Errorf("CumTrapz[0] = %v, want 10", got[0])
	}
	if math.Abs(got[1]-1) > 1e-12 {
		t.Errorf("CumTrapz[1] = %v, want 1", got[1])
	}
}

func TestCumTrapzDstReuse(t *testing.T) {
	x := []float64{0, 1}
	f := []float64{2, 2}
	dst := make([]float64, 2)
	got := CumTrapz(dst, x, f, 0)
	if &got[0] != &dst[0] {
		t.Error("CumTrapz did not reuse dst")
	}
}

func TestCumTrapzPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CumTrapz with mismatched lengths did not panic")
		}
	}()
	CumTrapz(nil, []float64{0, 1}, []float64{0}, 0)
}
