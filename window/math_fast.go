//go:build fastmath

package window

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathPow computes x^p using fast approximation.
// Uses the identity: x^p = e^(p * ln(x)) for positive x.
// Note: algo-approx doesn't provide a direct power function; non-positive
// bases fall back to the standard library (the y = 0 endpoint of kernel
// grids, not a hot-path case).
func mathPow(x, p float64) float64 {
	if x <= 0 {
		return math.Pow(x, p)
	}
	return approx.FastExp(p * approx.FastLog(x))
}
