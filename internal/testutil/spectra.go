package testutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PowerLawSpectrum tabulates P(k) = amp * k^index on n log-spaced wavenumbers
// spanning [kMin, kMax] inclusive. Power-law tables have closed-form variance
// integrals.
func PowerLawSpectrum(n int, kMin, kMax, amp, index float64) (ks, ps []float64) {
	ks = floats.LogSpan(make([]float64, n), kMin, kMax)
	ps = make([]float64, n)
	for i, k := range ks {
		ps[i] = amp * math.Pow(k, index)
	}
	return ks, ps
}

// FlatSpectrum tabulates the constant P(k) = amp on n log-spaced wavenumbers
// spanning [kMin, kMax] inclusive.
func FlatSpectrum(n int, kMin, kMax, amp float64) (ks, ps []float64) {
	return PowerLawSpectrum(n, kMin, kMax, amp, 0)
}
