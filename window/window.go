package window

import (
	"math"
	"strings"
)

// Kind identifies a smoothing window.
type Kind int

const (
	KindTopHat Kind = iota
	KindSharpK
	KindGaussian
	KindSmoothK
)

// largeArg is the argument beyond which the oscillatory top-hat kernel is
// clamped to zero to suppress integration noise.
const largeArg = 100.0

// smallArg is the threshold below which the top-hat kernel switches to its
// series expansion to avoid catastrophic cancellation in 3(sin y - y cos y).
const smallArg = 1e-4

// DefaultBeta is the shape parameter used for the smooth-k window when none
// is configured. The value is the common choice in smooth-k mass function
// fits.
const DefaultBeta = 4.8

// Option configures window evaluation.
type Option func(*config)

type config struct {
	beta float64
}

func defaultConfig() config {
	return config{beta: DefaultBeta}
}

// WithBeta sets the smooth-k shape parameter. Values <= 0 are ignored.
// The other window kinds have no shape parameter and ignore it.
func WithBeta(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.beta = v
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// kernel bundles the value and logarithmic-derivative forms of one window.
type kernel struct {
	name     string
	value    func(y float64, cfg config) float64
	logDeriv func(y float64, cfg config) float64
}

// kernels is the closed dispatch table over all supported kinds. Indexing it
// with an out-of-range Kind is the only way to get ErrUnknownKind.
var kernels = [...]kernel{
	KindTopHat:   {name: "tophat", value: topHatValue, logDeriv: topHatLogDeriv},
	KindSharpK:   {name: "sharpk", value: sharpKValue, logDeriv: sharpKLogDeriv},
	KindGaussian: {name: "gaussian", value: gaussianValue, logDeriv: gaussianLogDeriv},
	KindSmoothK:  {name: "smoothk", value: smoothKValue, logDeriv: smoothKLogDeriv},
}

// Valid reports whether k names one of the supported kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kernels)
}

// String returns the lowercase configuration name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kernels[k].name
}

// ParseKind maps a configuration name ("tophat", "sharpk", "gaussian",
// "smoothk") to its Kind. Matching is case-insensitive. Unknown names yield
// ErrUnknownKind; there is no default window.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := range kernels {
		if kernels[k].name == n {
			return Kind(k), nil
		}
	}
	return 0, unknownName(name)
}

// Value evaluates the window at the dimensionless argument y = k*R.
//
// All kinds return 1 at y = 0. An unrecognized kind yields ErrUnknownKind.
func Value(kind Kind, y float64, opts ...Option) (float64, error) {
	if !kind.Valid() {
		return 0, unknownKind(kind)
	}
	cfg := applyOptions(opts)
	return kernels[kind].value(y, cfg), nil
}

// LogDeriv evaluates dw/dln(y) at the dimensionless argument y = k*R.
//
// For KindSharpK the true derivative is a Dirac delta at y = 1; LogDeriv
// returns 0 and the caller must account for the delta analytically.
func LogDeriv(kind Kind, y float64, opts ...Option) (float64, error) {
	if !kind.Valid() {
		return 0, unknownKind(kind)
	}
	cfg := applyOptions(opts)
	return kernels[kind].logDeriv(y, cfg), nil
}

// Values evaluates the window element-wise over ys into dst and returns dst.
// If dst is nil a new slice is allocated; otherwise len(dst) must equal
// len(ys). Per-element semantics are identical to Value.
func Values(dst []float64, kind Kind, ys []float64, opts ...Option) ([]float64, error) {
	if !kind.Valid() {
		return nil, unknownKind(kind)
	}
	dst, err := ensureLen(dst, len(ys))
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	eval := kernels[kind].value
	for i, y := range ys {
		dst[i] = eval(y, cfg)
	}
	return dst, nil
}

// LogDerivs evaluates dw/dln(y) element-wise over ys into dst and returns
// dst. Semantics per element are identical to LogDeriv.
func LogDerivs(dst []float64, kind Kind, ys []float64, opts ...Option) ([]float64, error) {
	if !kind.Valid() {
		return nil, unknownKind(kind)
	}
	dst, err := ensureLen(dst, len(ys))
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	eval := kernels[kind].logDeriv
	for i, y := range ys {
		dst[i] = eval(y, cfg)
	}
	return dst, nil
}

func ensureLen(dst []float64, n int) ([]float64, error) {
	if dst == nil {
		return make([]float64, n), nil
	}
	if len(dst) != n {
		return nil, errMismatchedLength
	}
	return dst, nil
}

// topHatValue computes 3(sin y - y cos y)/y^3. The kernel oscillates with a
// decaying envelope; past largeArg it contributes only noise to spectral
// integrals and is clamped to zero.
func topHatValue(y float64, _ config) float64 {
	if y > largeArg {
		return 0
	}
	if y < smallArg {
		// Series about y = 0: 1 - y^2/10 + y^4/280.
		y2 := y * y
		return 1 - y2/10 + y2*y2/280
	}
	return 3 * (math.Sin(y) - y*math.Cos(y)) / (y * y * y)
}

// topHatLogDeriv computes 3((y^2-3)sin y + 3y cos y)/y^3, which is
// d(topHatValue)/dln(y).
func topHatLogDeriv(y float64, _ config) float64 {
	if y > largeArg {
		return 0
	}
	if y < smallArg {
		// Series about y = 0: -y^2/5 + y^4/70.
		y2 := y * y
		return -y2/5 + y2*y2/70
	}
	return 3 * ((y*y-3)*math.Sin(y) + 3*y*math.Cos(y)) / (y * y * y)
}

func sharpKValue(y float64, _ config) float64 {
	if y > 1 {
		return 0
	}
	return 1
}

// sharpKLogDeriv is identically zero: the step derivative is a Dirac delta
// at y = 1 that cannot be represented pointwise.
func sharpKLogDeriv(_ float64, _ config) float64 {
	return 0
}

func gaussianValue(y float64, _ config) float64 {
	return mathExp(-y * y / 2)
}

func gaussianLogDeriv(y float64, _ config) float64 {
	return -y * y * mathExp(-y*y/2)
}

func smoothKValue(y float64, cfg config) float64 {
	return 1 / (1 + mathPow(y, cfg.beta))
}

func smoothKLogDeriv(y float64, cfg config) float64 {
	yb := mathPow(y, cfg.beta)
	d := 1 + yb
	return -cfg.beta * yb / (d * d)
}
