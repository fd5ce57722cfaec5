package power

import (
	"math"
	"testing"
)

func TestSplineReproducesNodes(t *testing.T) {
	tab, err := NewTable(
		[]float64{0.01, 0.1, 1, 10},
		[]float64{1000, 100, 1, 0.01},
	)
	if err != nil {
		t.Fatal(err)
	}

	sp, err := NewSpline(tab)
	if err != nil {
		t.Fatalf("NewSpline error: %v", err)
	}

	for i := range tab.K {
		got := sp.Eval(tab.K[i])
		if math.Abs(got-tab.P[i]) > 1e-9 {
			t.Fatalf("node %d: Eval(%v)=%v, want %v", i, tab.K[i], got, tab.P[i])
		}
	}
}

func TestSplineReproducesLinearData(t *testing.T) {
	// A natural cubic spline through collinear points is the line itself.
	k := []float64{1, 2, 3, 4, 5}
	p := make([]float64, len(k))
	for i := range k {
		p[i] = 2*k[i] + 1
	}

	tab, err := NewTable(k, p)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := NewSpline(tab)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{1.5, 2.25, 3.5, 4.75} {
		got := sp.Eval(x)
		want := 2*x + 1
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("Eval(%v)=%v, want %v", x, got, want)
		}
	}
}

func TestSplineClampsOutsideRange(t *testing.T) {
	tab, err := NewTable(
		[]float64{0.1, 1, 10},
		[]float64{50, 5, 0.5},
	)
	if err != nil {
		t.Fatal(err)
	}
	sp, err := NewSpline(tab)
	if err != nil {
		t.Fatal(err)
	}

	if got := sp.Eval(0.001); got != 50 {
		t.Fatalf("below range: Eval=%v, want endpoint 50", got)
	}
	if got := sp.Eval(1e4); got != 0.5 {
		t.Fatalf("above range: Eval=%v, want endpoint 0.5", got)
	}
}

func TestSplineEvalAll(t *testing.T) {
	tab, err := NewTable([]float64{1, 2, 3}, []float64{3, 5, 7})
	if err != nil {
		t.Fatal(err)
	}
	sp, err := NewSpline(tab)
	if err != nil {
		t.Fatal(err)
	}

	ks := []float64{0.5, 1, 2.5, 9}
	out := sp.EvalAll(nil, ks)
	if len(out) != len(ks) {
		t.Fatalf("len=%d, want %d", len(out), len(ks))
	}
	for i, k := range ks {
		if out[i] != sp.Eval(k) {
			t.Fatalf("index %d: EvalAll %v != Eval %v", i, out[i], sp.Eval(k))
		}
	}

	dst := make([]float64, len(ks))
	out2 := sp.EvalAll(dst, ks)
	if &out2[0] != &dst[0] {
		t.Fatal("EvalAll should reuse the provided dst")
	}
}
