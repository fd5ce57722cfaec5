package variance

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cosmo/internal/numint"
	"github.com/cwbudde/algo-cosmo/power"
	"github.com/cwbudde/algo-cosmo/window"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

const twoPi2 = 2 * math.Pi * math.Pi

// sharpKSeed seeds the cumulative sharp-k integral at the largest radius so
// the log-derivative never divides by zero there.
const sharpKSeed = 1e-5

// Config holds variance calculation parameters.
type Config struct {
	// Window selects the smoothing kernel.
	Window window.Kind

	// Beta is the smooth-k steepness; 0 selects window.DefaultBeta. Other
	// kinds ignore it.
	Beta float64

	// NRBin is the number of radius bins, at least 2.
	NRBin int

	// RMin and RMax bound the radius grid in Mpc/h; RMax > RMin > 0.
	RMin float64
	RMax float64

	// OutputPath, when non-empty, is the file Run persists the profile to.
	OutputPath string
}

// Profile holds the variance of the smoothed density field on a log-spaced
// radius grid. The slices are parallel and immutable by convention once
// returned.
type Profile struct {
	// R is the smoothing radius grid in Mpc/h, ascending.
	R []float64

	// Sigma2 is sigma^2(R).
	Sigma2 []float64

	// DlnSigma2DlnR is dln(sigma^2)/dln(R).
	DlnSigma2DlnR []float64
}

// Calculator computes variance profiles for one power-spectrum table. The
// table is read-only, so one calculator may serve concurrent Calculate
// calls.
type Calculator struct {
	cfg   Config
	table *power.Table
}

// NewCalculator validates cfg and returns a calculator bound to table.
// Unknown window kinds, NRBin < 2 and radius ranges violating
// RMax > RMin > 0 yield an error wrapping ErrBadConfig; there is no default
// fallback.
func NewCalculator(table *power.Table, cfg Config) (*Calculator, error) {
	cfg = normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, badConfig("nil spectrum table")
	}
	return &Calculator{cfg: cfg, table: table}, nil
}

// Compute is a one-shot variance profile over table with cfg.
func Compute(table *power.Table, cfg Config) (*Profile, error) {
	c, err := NewCalculator(table, cfg)
	if err != nil {
		return nil, err
	}
	return c.Calculate()
}

func normalizeConfig(cfg Config) Config {
	if cfg.Beta <= 0 {
		cfg.Beta = window.DefaultBeta
	}
	return cfg
}

func validateConfig(cfg Config) error {
	if !cfg.Window.Valid() {
		return fmt.Errorf("%w: %w (kind %d)", ErrBadConfig, window.ErrUnknownKind, int(cfg.Window))
	}
	if cfg.NRBin < 2 {
		return badConfig("NRBin = %d, need at least 2", cfg.NRBin)
	}
	// The negated comparisons reject NaN bounds as well.
	if !(cfg.RMin > 0) || !(cfg.RMax > cfg.RMin) {
		return badConfig("radius range [%g, %g], need RMax > RMin > 0", cfg.RMin, cfg.RMax)
	}
	return nil
}

// Calculate computes the variance profile over the configured radius grid.
func (c *Calculator) Calculate() (*Profile, error) {
	rs := floats.LogSpan(make([]float64, c.cfg.NRBin), c.cfg.RMin, c.cfg.RMax)
	if c.cfg.Window == window.KindSharpK {
		return c.sharpKProfile(rs)
	}
	return c.directProfile(rs)
}

// directProfile integrates k^2 P(k) w(kr)^2 over the full tabulated k grid,
// once per radius bin.
func (c *Calculator) directProfile(rs []float64) (*Profile, error) {
	ks := c.table.K
	n := c.table.Len()
	opts := []window.Option{window.WithBeta(c.cfg.Beta)}

	// k^2 P(k) is radius independent.
	k2p := make([]float64, n)
	vecmath.MulBlock(k2p, ks, ks)
	vecmath.MulBlockInPlace(k2p, c.table.P)

	ys := make([]float64, n)
	w := make([]float64, n)
	dw := make([]float64, n)
	integrand := make([]float64, n)

	p := &Profile{
		R:             rs,
		Sigma2:        make([]float64, len(rs)),
		DlnSigma2DlnR: make([]float64, len(rs)),
	}

	for i, r := range rs {
		for j, k := range ks {
			ys[j] = k * r
		}
		if _, err := window.Values(w, c.cfg.Window, ys, opts...); err != nil {
			return nil, err
		}
		if _, err := window.LogDerivs(dw, c.cfg.Window, ys, opts...); err != nil {
			return nil, err
		}

		vecmath.MulBlock(integrand, k2p, w)
		vecmath.MulBlockInPlace(integrand, w)
		v := integrate.Trapezoidal(ks, integrand) / twoPi2
		p.Sigma2[i] = v

		vecmath.MulBlock(integrand, k2p, w)
		vecmath.MulBlockInPlace(integrand, dw)
		p.DlnSigma2DlnR[i] = 2 * integrate.Trapezoidal(ks, integrand) / (twoPi2 * v)
	}
	return p, nil
}

// sharpKProfile exploits the step shape of the sharp-k window: the variance
// at radius r is the integral of k^2 P(k) up to k = 1/r, accumulated once
// over the reversed radius grid, and the log-derivative follows from the
// step's delta-function derivative in closed form.
func (c *Calculator) sharpKProfile(rs []float64) (*Profile, error) {
	spline, err := power.NewSpline(c.table)
	if err != nil {
		return nil, err
	}

	n := len(rs)
	kbin := make([]float64, n)
	for i, r := range rs {
		kbin[i] = 1 / r
	}
	floats.Reverse(kbin) // ascending in k

	pk := spline.EvalAll(nil, kbin)
	integrand := make([]float64, n)
	vecmath.MulBlock(integrand, kbin, kbin)
	vecmath.MulBlockInPlace(integrand, pk)

	sigma2 := numint.CumTrapz(nil, kbin, integrand, sharpKSeed)
	floats.Scale(1/twoPi2, sigma2)
	floats.Reverse(sigma2) // back to ascending in r

	dln := make([]float64, n)
	for i, r := range rs {
		dln[i] = -spline.Eval(1/r) / (twoPi2 * sigma2[i] * r * r * r)
	}

	return &Profile{R: rs, Sigma2: sigma2, DlnSigma2DlnR: dln}, nil
}
