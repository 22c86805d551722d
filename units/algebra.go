// Copyright 2020 Aleksandr Demakin. All rights reserved.

package units

import (
	"math"

	"github.com/avdva/calc/internal/mathutil"
)

// IsConsistent returns true if a value in a can be converted to b.
func IsConsistent(a, b *Unit) bool {
	return a.Dimensions() == b.Dimensions()
}

// ConvertTo returns the factor converting a value in a into b.
// Returns NaN if the units are inconsistent.
func ConvertTo(a, b *Unit) float64 {
	if a == b {
		return 1
	}
	if !IsConsistent(a, b) {
		return math.NaN()
	}
	return a.Scale() / b.Scale()
}

// Convert returns the factor converting a value in b into a.
// op is the operation that needs the conversion, it is reported in the error.
func Convert(a, b *Unit, op Op) (float64, error) {
	if a == b {
		return 1, nil
	}
	if !IsConsistent(a, b) {
		return 0, &InconsistentError{Left: Text(a), Right: Text(b), Op: op}
	}
	return b.Scale() / a.Scale(), nil
}

// Multiply returns a·b and the factor that must be applied to the product of the values.
//
// Atoms of b having the same dimensions as an atom of a are converted to that atom,
// so m·ft becomes m². Dimensionless atoms are folded into the factor,
// and a product without dimensions becomes nil.
// If literal is true, b is a unit written by the user and its atoms are kept as is.
func Multiply(a, b *Unit, literal bool) (*Unit, float64) {
	return compose(a, b, 1, literal)
}

// Divide returns a/b and the factor that must be applied to the quotient of the values.
// See Multiply for details.
func Divide(a, b *Unit, literal bool) (*Unit, float64) {
	return compose(a, b, -1, literal)
}

func compose(a, b *Unit, sign int, literal bool) (*Unit, float64) {
	if b == nil {
		return a, 1
	}
	var terms []term
	if a != nil {
		terms = append(terms, a.terms...)
	}
	factor := 1.0
	for _, t := range b.terms {
		pow := sign * t.pow
		i := indexOfAtom(terms, t.atom)
		if i < 0 && !literal {
			if i = indexOfDims(terms, t.atom.dims); i >= 0 {
				factor *= mathutil.PowInt(t.atom.scale/terms[i].atom.scale, pow)
			}
		}
		if i >= 0 {
			terms[i].pow += pow
		} else {
			terms = append(terms, term{atom: t.atom, pow: pow})
		}
	}
	terms = dropZeroPowers(terms)
	if !literal {
		var f float64
		terms, f = foldDimensionless(terms)
		factor *= f
	}
	if len(terms) == 0 {
		return nil, factor
	}
	return defaultRegistry.intern(terms), factor
}

func indexOfAtom(terms []term, a *atom) int {
	for i, t := range terms {
		if t.atom == a {
			return i
		}
	}
	return -1
}

func indexOfDims(terms []term, dims Dimensions) int {
	if dims.IsZero() {
		return -1
	}
	for i, t := range terms {
		if t.atom.dims == dims {
			return i
		}
	}
	return -1
}

func dropZeroPowers(terms []term) []term {
	result := terms[:0]
	for _, t := range terms {
		if t.pow != 0 {
			result = append(result, t)
		}
	}
	return result
}

// foldDimensionless removes dimensionless atoms, and the whole unit, if its dimensions cancel out.
func foldDimensionless(terms []term) ([]term, float64) {
	factor := 1.0
	var dims Dimensions
	result := terms[:0]
	for _, t := range terms {
		if t.atom.dims.IsZero() {
			factor *= mathutil.PowInt(t.atom.scale, t.pow)
			continue
		}
		dims = dims.add(t.atom.dims, t.pow)
		result = append(result, t)
	}
	if len(result) > 0 && dims.IsZero() {
		for _, t := range result {
			factor *= mathutil.PowInt(t.atom.scale, t.pow)
		}
		result = result[:0]
	}
	return result, factor
}

// IsComposite returns true if a value with unit u should be treated as having a derived unit.
// Several atoms always make a composite unit. A single atom with a negative power,
// like 1/s, is composite unless the value is exactly 1, so that "1/s" alone stays atomic.
func IsComposite(value float64, u *Unit) bool {
	if u == nil {
		return false
	}
	if len(u.terms) > 1 {
		return true
	}
	return u.terms[0].pow < 0 && value != 1
}
