// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package calc implements Quantity, a real or complex number with an optional physical unit.
//
// Quantities are immutable values. All the operators return new quantities,
// unit handling is delegated to the units package.
// Comparison and logical operators return One or Zero instead of a bool,
// so that every result of an expression is a Quantity.
package calc

import (
	"cmp"
	"math"
	"slices"

	"github.com/avdva/calc/internal/mathutil"
	"github.com/avdva/calc/units"
)

// LogicalZero is the magnitude below which a real part is treated as false by logical operators.
const LogicalZero = 1e-12

var (
	// Tolerance is the precision of AlmostEquals and of the comparison operators.
	// It is relative for magnitudes above 1 and absolute below 1.
	// This variable is not thread-safe, so this should be changed on program start.
	Tolerance = 1e-14
)

// Predefined quantities. They are plain numbers and must not be reassigned.
var (
	// Zero is also the false result of comparison and logical operators.
	Zero = New(0)
	// One is also the true result of comparison and logical operators.
	One = New(1)
	// NaN is the result of undefined operations, like 0 / 0.
	NaN = New(math.NaN())
	// PositiveInfinity is +Inf.
	PositiveInfinity = New(math.Inf(1))
	// NegativeInfinity is -Inf.
	NegativeInfinity = New(math.Inf(-1))
	// ComplexInfinity is an infinite value in the complex plane,
	// it differs from the real infinities.
	ComplexInfinity = NewComplex(math.Inf(1), math.Inf(1))
)

// Quantity is a complex number with a unit.
// A nil unit means the quantity is a plain number.
// A quantity can denote a unit itself, like "1 m" in "5 km in m", see FromUnit.
type Quantity struct {
	re, im float64
	units  *units.Unit
	isUnit bool
}

func newQuantity(re, im float64, u *units.Unit, isUnit bool) Quantity {
	return Quantity{re: re, im: im, units: u, isUnit: isUnit && u != nil}
}

// New returns a real unitless quantity.
func New(re float64) Quantity {
	return Quantity{re: re}
}

// WithUnit returns a real quantity measured in u.
func WithUnit(re float64, u *units.Unit) Quantity {
	return Quantity{re: re, units: u}
}

// NewComplex returns a unitless quantity re + im*i.
func NewComplex(re, im float64) Quantity {
	return Quantity{re: re, im: im}
}

// ComplexWithUnit returns re + im*i measured in u.
func ComplexWithUnit(re, im float64, u *units.Unit) Quantity {
	return Quantity{re: re, im: im, units: u}
}

// FromComplex returns c measured in u.
func FromComplex(c complex128, u *units.Unit) Quantity {
	return ComplexWithUnit(real(c), imag(c), u)
}

// FromUnit returns the unit literal for u: 1 u.
// For a nil unit it returns One, as a plain number can't be a unit.
func FromUnit(u *units.Unit) Quantity {
	return newQuantity(1, 0, u, true)
}

// Re returns the real part.
func (q Quantity) Re() float64 {
	return q.re
}

// Im returns the imaginary part.
func (q Quantity) Im() float64 {
	return q.im
}

// Complex returns the numeric part as a complex128.
func (q Quantity) Complex() complex128 {
	return complex(q.re, q.im)
}

// Units returns the unit of q, and false if q is a plain number.
func (q Quantity) Units() (*units.Unit, bool) {
	return q.units, q.units != nil
}

// IsUnit returns true if q denotes a unit rather than a measured value.
func (q Quantity) IsUnit() bool {
	return q.isUnit
}

// IsDimensionless returns true if q has no unit.
func (q Quantity) IsDimensionless() bool {
	return q.units == nil
}

// IsReal returns true if the imaginary part is zero or negligible.
func (q Quantity) IsReal() bool {
	return mathutil.Classify(q.re, q.im) == mathutil.KindReal
}

// IsComplex returns true if both parts are significant.
// Purely imaginary numbers are not complex, see IsImaginary.
func (q Quantity) IsComplex() bool {
	return mathutil.Classify(q.re, q.im) == mathutil.KindComplex
}

// IsImaginary returns true if the real part is negligible against a nonzero imaginary part.
func (q Quantity) IsImaginary() bool {
	return mathutil.Classify(q.re, q.im) == mathutil.KindImaginary
}

// Conjugate returns re - im*i with the same unit.
func (q Quantity) Conjugate() Quantity {
	return ComplexWithUnit(q.re, -q.im, q.units)
}

// Abs returns the magnitude of the numeric part.
func (q Quantity) Abs() float64 {
	return mathutil.Abs(q.re, q.im)
}

// SquaredAbs returns re² + im².
func (q Quantity) SquaredAbs() float64 {
	return mathutil.SquaredAbs(q.re, q.im)
}

// IsComposite returns true if q's unit is a derived one, see units.IsComposite.
func (q Quantity) IsComposite() bool {
	return units.IsComposite(q.re, q.units)
}

// Equals returns true if q and other have the same numbers and the same unit.
// Units are not converted: 1 m doesn't equal 100 cm, and 1 m doesn't equal 1.
// NaN equals NaN here.
func (q Quantity) Equals(other Quantity) bool {
	if q.units == nil || other.units == nil {
		if q.units != other.units {
			return false
		}
	} else if !q.units.Equal(other.units) {
		return false
	}
	return mathutil.SameFloat(q.re, other.re) && mathutil.SameFloat(q.im, other.im)
}

// AlmostEquals returns true if q and other are equal within Tolerance after converting other to q's unit.
func (q Quantity) AlmostEquals(other Quantity) bool {
	if q.units == other.units {
		return almostEqual(q.re, other.re) && almostEqual(q.im, other.im)
	}
	if !units.IsConsistent(q.units, other.units) {
		return false
	}
	d := units.ConvertTo(other.units, q.units)
	return almostEqual(q.re, other.re*d) && almostEqual(q.im, other.im*d)
}

// CompareTo compares q and other after converting other to q's unit.
// Real parts are compared first, then imaginary ones. It is not a mathematical order
// for complex numbers, but it is enough for sorting.
// Returns -1 if q < other, 0 if q == other, 1 if q > other.
// NaNs are less than any other number.
func (q Quantity) CompareTo(other Quantity) (int, error) {
	d, err := units.Convert(q.units, other.units, units.OpCompare)
	if err != nil {
		return 0, err
	}
	if result := cmp.Compare(q.re, other.re*d); result != 0 {
		return result, nil
	}
	return cmp.Compare(q.im, other.im*d), nil
}

// ConvertTo returns q measured in u.
func (q Quantity) ConvertTo(u *units.Unit) (Quantity, error) {
	d, err := units.Convert(u, q.units, units.OpConvert)
	if err != nil {
		return Zero, err
	}
	return ComplexWithUnit(q.re*d, q.im*d, u), nil
}

// Sort sorts quantities in ascending order, see CompareTo.
// Returns an error if the quantities have inconsistent units.
// In this case the order of the elements is unspecified.
func Sort(qs []Quantity) error {
	var err error
	slices.SortStableFunc(qs, func(a, b Quantity) int {
		if err != nil {
			return 0
		}
		var result int
		result, err = a.CompareTo(b)
		return result
	})
	return err
}

func almostEqual(a, b float64) bool {
	return mathutil.AlmostEqual(a, b, Tolerance)
}
