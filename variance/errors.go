package variance

import (
	"errors"
	"fmt"
)

// ErrBadConfig reports an unusable calculator configuration: an unknown
// window kind, too few radius bins, or a degenerate radius range. All
// configuration failures wrap it.
var ErrBadConfig = errors.New("variance: invalid config")

var errNilProfile = errors.New("variance: nil profile")

func badConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...))
}
