// Package power provides the tabulated linear matter power spectrum
// consumed by the variance calculator.
//
// A [Table] holds parallel wavenumber and power columns, strictly increasing
// in k. Tables are read from two-column text files with '#' comments
// ([ReadTable], [ReadTableFile]) or produced by a registered Boltzmann-solver
// callback ([Registry], [Load]). The package does not invoke CAMB or CLASS
// itself; solvers are external collaborators registered by the caller.
//
// [Spline] wraps a natural cubic spline over the table for the sharp-k
// variance path. Queries outside the tabulated range return the endpoint
// power values (constant extension); no out-of-range error is ever raised.
package power
