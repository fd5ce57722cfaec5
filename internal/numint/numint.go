// Package numint provides small numerical-integration helpers shared by the
// cosmology and variance packages. It complements gonum's one-shot
// quadrature rules with the cumulative form those rules do not offer.
package numint

// CumTrapz writes the running trapezoidal integral of f over the abscissae x
// into dst and returns dst. dst[0] is the initial constant; dst[i] for i > 0
// is the integral of f from x[0] to x[i]. The constant seeds only the first
// element, it is not added to the accumulated values.
//
// x and f must have equal length >= 1. If dst is nil a new slice is
// allocated; otherwise it must have the same length as x.
func CumTrapz(dst, x, f []float64, initial float64) []float64 {
	if len(x) != len(f) {
		panic("numint: x and f must have same length")
	}
	if dst == nil {
		dst = make([]float64, len(x))
	}
	if len(dst) != len(x) {
		panic("numint: dst and x must have same length")
	}
	if len(x) == 0 {
		return dst
	}

	dst[0] = initial
	acc := 0.0
	for i := 1; i < len(x); i++ {
		acc += 0.5 * (x[i] - x[i-1]) * (f[i] + f[i-1])
		dst[i] = acc
	}
	return dst
}
