// Package variance computes the variance of the linear matter density field
// smoothed at radius R,
//
//	sigma^2(R) = 1/(2 pi^2) * Int k^2 P(k) w(kR)^2 dk,
//
// together with its logarithmic derivative dln(sigma^2)/dln(R), from a
// tabulated power spectrum. Top-hat, gaussian and smooth-k windows integrate
// directly over the tabulated k grid, once per radius bin. The sharp-k
// window instead accumulates a single cumulative integral over k = 1/R,
// which its step shape makes exact, and recovers the log-derivative from the
// closed form of the step's delta-function derivative.
//
// Profiles live on a log-spaced radius grid between RMin and RMax inclusive
// and can be persisted as a three-column text table.
package variance
