//go:build !fastmath

package window

import "math"

// mathExp computes e^x using the standard library.
func mathExp(x float64) float64 {
	return math.Exp(x)
}

// mathPow computes x^p using the standard library.
func mathPow(x, p float64) float64 {
	return math.Pow(x, p)
}
