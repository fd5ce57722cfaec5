// Package cosmo evaluates background quantities of a Friedmann cosmology:
// the Hubble parameter, the comoving critical density, the linear growth
// factor, comoving distances and the CMB temperature.
//
// All quantities derive from an immutable Params value. Distances are in
// Mpc, the Hubble parameter in km/s/Mpc and densities in h^2 Msun/Mpc^3,
// so none of the results carry hidden factors of h.
package cosmo
