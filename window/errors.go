package window

import (
	"errors"
	"fmt"
)

// ErrUnknownKind reports a window kind outside the supported set. The
// calculation cannot proceed; there is no default window.
var ErrUnknownKind = errors.New("window: unknown kind")

var errMismatchedLength = errors.New("window: dst and ys must have same length")

func unknownKind(k Kind) error {
	return fmt.Errorf("%w: Kind(%d)", ErrUnknownKind, int(k))
}

func unknownName(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
