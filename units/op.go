package units

import (
	"errors"
	"fmt"
	"strconv"
)

// Op is an operation that requested a unit conversion.
// It is only used to describe a failure.
type Op int

const (
	OpCompare Op = iota
	OpAdd
	OpSub
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpConvert
)

var opSymbols = [...]string{
	OpCompare: ",",
	OpAdd:     "+",
	OpSub:     "-",
	OpEq:      "≡",
	OpNe:      "≠",
	OpLt:      "<",
	OpGt:      ">",
	OpLe:      "≤",
	OpGe:      "≥",
	OpConvert: "|",
}

// String returns the operator symbol.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbols) {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opSymbols[op]
}

// ErrInconsistentUnits is returned, wrapped into InconsistentError,
// if two units have different dimensions.
var ErrInconsistentUnits = errors.New("inconsistent units")

// InconsistentError describes a conversion between units of different dimensions.
type InconsistentError struct {
	Left, Right string
	Op          Op
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("%v: %q %s %q", ErrInconsistentUnits, nameOf(e.Left), e.Op, nameOf(e.Right))
}

// Unwrap returns ErrInconsistentUnits.
func (e *InconsistentError) Unwrap() error {
	return ErrInconsistentUnits
}

func nameOf(text string) string {
	if len(text) == 0 {
		return "dimensionless"
	}
	return text
}
