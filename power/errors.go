package power

import "errors"

var (
	// ErrBadTable reports a malformed spectrum table: mismatched columns,
	// too few rows, negative entries, or non-increasing wavenumbers.
	ErrBadTable = errors.New("power: invalid spectrum table")

	// ErrUnknownSource reports a spectrum source that is neither a readable
	// file nor a registered solver key. Nothing is silently substituted.
	ErrUnknownSource = errors.New("power: unknown spectrum source")
)
