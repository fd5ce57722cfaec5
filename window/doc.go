// Package window provides Fourier-space smoothing windows used to filter
// the cosmological density field at a given comoving radius.
//
// All windows are evaluated at the dimensionless argument y = k*R, where k
// is the wavenumber and R the smoothing radius, and are normalized to unity
// at zero argument. Four kinds are supported:
//
//   - [KindTopHat]:   real-space spherical top hat, w = 3(sin y - y cos y)/y^3
//   - [KindSharpK]:   sharp cutoff in k-space, w = 1 for y <= 1, else 0
//   - [KindGaussian]: w = exp(-y^2/2)
//   - [KindSmoothK]:  smoothed k-space cutoff, w = 1/(1+y^beta)
//
// [LogDeriv] returns dw/dln(y), not dw/dy. For the sharp-k window that
// derivative is a Dirac delta at y = 1; LogDeriv reports 0 there and the
// delta contribution must be handled analytically by the caller (the
// variance package does this in its sharp-k path).
//
// There is no fallback window: an unrecognized [Kind] yields
// [ErrUnknownKind].
package window
