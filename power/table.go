package power

import (
	"fmt"
)

// Table is a tabulated linear matter power spectrum: parallel wavenumber and
// power columns with K strictly increasing and both columns non-negative.
// Tables are immutable once built; callers must not modify the slices.
type Table struct {
	// K holds wavenumbers in ascending order [h/Mpc].
	K []float64
	// P holds the power at each wavenumber [(Mpc/h)^3].
	P []float64
}

// NewTable validates and copies the given columns into a Table.
func NewTable(k, p []float64) (*Table, error) {
	if len(k) != len(p) {
		return nil, fmt.Errorf("%w: %d wavenumbers vs %d powers", ErrBadTable, len(k), len(p))
	}
	if len(k) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, have %d", ErrBadTable, len(k))
	}

	// The negated comparisons reject NaN entries as well.
	for i := range k {
		if !(k[i] >= 0) || !(p[i] >= 0) {
			return nil, fmt.Errorf("%w: invalid entry at row %d (k=%g, P=%g)", ErrBadTable, i, k[i], p[i])
		}
		if i > 0 && !(k[i] > k[i-1]) {
			return nil, fmt.Errorf("%w: k not strictly increasing at row %d (%g after %g)", ErrBadTable, i, k[i], k[i-1])
		}
	}

	t := &Table{
		K: make([]float64, len(k)),
		P: make([]float64, len(p)),
	}
	copy(t.K, k)
	copy(t.P, p)

	return t, nil
}

// Len returns the number of tabulated rows.
func (t *Table) Len() int {
	return len(t.K)
}

// KMin returns the smallest tabulated wavenumber.
func (t *Table) KMin() float64 {
	return t.K[0]
}

// KMax returns the largest tabulated wavenumber.
func (t *Table) KMax() float64 {
	return t.K[len(t.K)-1]
}
