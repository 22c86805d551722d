// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"math"

	"github.com/avdva/calc/units"
)

// The operators below work on real parts only. Complex arithmetic is done by the evaluator.

// Neg returns -q. Both parts are negated, the unit and the unit flag are kept.
func (q Quantity) Neg() Quantity {
	return newQuantity(-q.re, -q.im, q.units, q.isUnit)
}

// Add returns q + other in q's unit.
// Returns an error if other can't be converted to q's unit.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	d, err := units.Convert(q.units, other.units, units.OpAdd)
	if err != nil {
		return Zero, err
	}
	return WithUnit(q.re+other.re*d, q.units), nil
}

// Sub returns q - other in q's unit.
// Returns an error if other can't be converted to q's unit.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	d, err := units.Convert(q.units, other.units, units.OpSub)
	if err != nil {
		return Zero, err
	}
	return WithUnit(q.re-other.re*d, q.units), nil
}

// Mul returns q * other.
// A plain number multiplied by a dimensionless value, like 50%, gives a plain number.
func (q Quantity) Mul(other Quantity) Quantity {
	if q.units == nil {
		return q.mulPlain(other)
	}
	u, d := units.Multiply(q.units, other.units, false)
	return WithUnit(q.re*other.re*d, u)
}

// Multiply is like a.Mul(b), but it keeps the unit literals:
// the product of two unit literals is a unit literal.
func Multiply(a, b Quantity) Quantity {
	if a.units == nil {
		return a.mulPlain(b)
	}
	u, d := units.Multiply(a.units, b.units, b.isUnit)
	return newQuantity(a.re*b.re*d, 0, u, a.isUnit && b.isUnit)
}

func (q Quantity) mulPlain(other Quantity) Quantity {
	if other.units != nil && other.units.IsDimensionless() && !other.isUnit {
		return New(q.re * other.re * other.units.DimensionlessFactor())
	}
	return WithUnit(q.re*other.re, other.units)
}

// Div returns q / other.
// Division by zero gives infinity or NaN.
func (q Quantity) Div(other Quantity) Quantity {
	u, d := units.Divide(q.units, other.units, false)
	return WithUnit(q.re/other.re*d, u)
}

// Divide is like a.Div(b), but it keeps the unit literals, see Multiply.
func Divide(a, b Quantity) Quantity {
	u, d := units.Divide(a.units, b.units, b.isUnit)
	return newQuantity(a.re/b.re*d, 0, u, a.isUnit && b.isUnit)
}

// Scale returns q with the real part multiplied by f.
func (q Quantity) Scale(f float64) Quantity {
	return WithUnit(q.re*f, q.units)
}

// Rem returns the remainder of q / other, it has the sign of q.
// other must be a plain number.
func (q Quantity) Rem(other Quantity) (Quantity, error) {
	if other.units != nil {
		return Zero, &RemainderError{Left: units.Text(q.units), Right: units.Text(other.units)}
	}
	return WithUnit(math.Mod(q.re, other.re), q.units), nil
}

// IntDiv returns a / b truncated towards zero.
// It returns NaN if b's real part is zero.
func IntDiv(a, b Quantity) Quantity {
	u, d := units.Divide(a.units, b.units, false)
	c := math.NaN()
	if b.re != 0 {
		c = math.Trunc(a.re / b.re * d)
	}
	return newQuantity(c, 0, u, a.isUnit && b.isUnit)
}
