package calc

import (
	"errors"
	"fmt"
)

// ErrRemainderUnits is returned, wrapped into RemainderError, if the divisor of a remainder has a unit.
var ErrRemainderUnits = errors.New("cannot evaluate remainder")

// RemainderError holds the units of the operands of a failed remainder.
type RemainderError struct {
	Left, Right string
}

func (e *RemainderError) Error() string {
	return fmt.Sprintf("%v for units %q and %q", ErrRemainderUnits, e.Left, e.Right)
}

// Unwrap returns ErrRemainderUnits.
func (e *RemainderError) Unwrap() error {
	return ErrRemainderUnits
}
