package cosmo

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cwbudde/algo-cosmo/internal/numint"
)

// Growth-factor integrals run over the scale factor a = 1/(1+z); the fixed
// lower bound caps the usable redshift range at z < 99.
const (
	growthAMin      = 0.01
	growthQuadNodes = 80
)

// Params describes a Friedmann background cosmology. The zero value is not
// usable; construct Params directly or with FlatParams.
type Params struct {
	// OmegaM is the matter density parameter at z = 0.
	OmegaM float64

	// OmegaL is the dark-energy density parameter at z = 0. A non-flat
	// cosmology carries the curvature term OmegaK = 1 - OmegaM - OmegaL.
	OmegaL float64

	// H0 is the Hubble constant in km/s/Mpc.
	H0 float64

	// TCMB0 is the present-day CMB temperature in K. FlatParams sets it
	// to DefaultTCMB0.
	TCMB0 float64
}

// FlatParams returns a flat cosmology (OmegaL = 1 - OmegaM) for the
// dimensionless Hubble parameter h0, so H0 = 100 h0 km/s/Mpc, with the CMB
// temperature set to DefaultTCMB0.
func FlatParams(omegaM, h0 float64) Params {
	return Params{
		OmegaM: omegaM,
		OmegaL: 1 - omegaM,
		H0:     100 * h0,
		TCMB0:  DefaultTCMB0,
	}
}

// eFrac returns E(z) = H(z)/H0.
func (p Params) eFrac(z float64) float64 {
	zp := 1 + z
	omegaK := 1 - p.OmegaM - p.OmegaL
	return math.Sqrt(p.OmegaM*zp*zp*zp + omegaK*zp*zp + p.OmegaL)
}

// HubbleAt returns the Hubble parameter H(z) in km/s/Mpc.
func (p Params) HubbleAt(z float64) float64 {
	return p.H0 * p.eFrac(z)
}

// RhoCritAt returns the critical density at redshift z in h^2 Msun / Mpc^3,
// in the comoving convention where the mean matter density stays constant.
func (p Params) RhoCritAt(z float64) float64 {
	zp := 1 + z
	e := p.eFrac(z)
	return RhoCrit0 * e * e / (zp * zp * zp)
}

// growthRaw returns the unnormalized growth factor
//
//	E(z) * Int da / (a E(1/a-1))^3,  a in [growthAMin, 1/(1+z)]
//
// following Longair eq. 11.56. Constant prefactors cancel in the normalized
// ratio and are omitted.
func (p Params) growthRaw(z float64) float64 {
	aMax := 1 / (1 + z)
	if aMax <= growthAMin {
		return 0
	}
	integral := quad.Fixed(func(a float64) float64 {
		v := a * p.eFrac(1/a-1)
		return 1 / (v * v * v)
	}, growthAMin, aMax, growthQuadNodes, nil, 1)
	return p.eFrac(z) * integral
}

// GrowthFactorAt returns the linear growth factor D(z) normalized so that
// D(0) = 1. Redshifts beyond the scale-factor integration cutoff (z > 99)
// return 0.
func (p Params) GrowthFactorAt(z float64) float64 {
	return p.growthRaw(z) / p.growthRaw(0)
}

// GrowthFactor returns the linear growth factor at every redshift in zs,
// normalized so that D(0) = 1.
func (p Params) GrowthFactor(zs []float64) []float64 {
	d0 := p.growthRaw(0)
	ds := make([]float64, len(zs))
	for i, z := range zs {
		ds[i] = p.growthRaw(z) / d0
	}
	return ds
}

// ComovingDistance returns the comoving distance in Mpc from zs[0] to every
// redshift in zs. zs must be in ascending order; the first element of the
// result is 0.
func (p Params) ComovingDistance(zs []float64) []float64 {
	integrand := make([]float64, len(zs))
	for i, z := range zs {
		integrand[i] = SpeedOfLight / p.HubbleAt(z)
	}
	return numint.CumTrapz(nil, zs, integrand, 0)
}

// DeltaComovingDistance returns the comoving distance in Mpc between the
// nearby redshifts z0 and z1, evaluated at the midpoint of the interval
// instead of integrating.
func (p Params) DeltaComovingDistance(z0, z1 float64) float64 {
	zh := 0.5 * (z0 + z1)
	return (z1 - z0) * SpeedOfLight / p.HubbleAt(zh)
}

// TCMBAt returns the CMB temperature at redshift z in K.
func (p Params) TCMBAt(z float64) float64 {
	return p.TCMB0 * (1 + z)
}
