// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"math"

	"github.com/avdva/calc/units"
)

// FromBool returns One for true and Zero for false.
func FromBool(b bool) Quantity {
	if b {
		return One
	}
	return Zero
}

// Bool returns true if |re| is not less than LogicalZero.
func (q Quantity) Bool() bool {
	return math.Abs(q.re) >= LogicalZero
}

// relation converts other to q's unit and returns both real parts.
func (q Quantity) relation(other Quantity, op units.Op) (c, d float64, err error) {
	f, err := units.Convert(q.units, other.units, op)
	if err != nil {
		return 0, 0, err
	}
	return q.re, other.re * f, nil
}

// Eq returns One if the real parts of q and other are almost equal.
func (q Quantity) Eq(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpEq)
	if err != nil {
		return Zero, err
	}
	return FromBool(almostEqual(c, d)), nil
}

// Ne returns One if the real parts of q and other are not almost equal.
func (q Quantity) Ne(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpNe)
	if err != nil {
		return Zero, err
	}
	return FromBool(!almostEqual(c, d)), nil
}

// Lt returns One if q < other, and they are not almost equal.
func (q Quantity) Lt(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpLt)
	if err != nil {
		return Zero, err
	}
	return FromBool(c < d && !almostEqual(c, d)), nil
}

// Gt returns One if q > other, and they are not almost equal.
func (q Quantity) Gt(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpGt)
	if err != nil {
		return Zero, err
	}
	return FromBool(c > d && !almostEqual(c, d)), nil
}

// Le returns One if q <= other, or they are almost equal.
func (q Quantity) Le(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpLe)
	if err != nil {
		return Zero, err
	}
	return FromBool(c <= d || almostEqual(c, d)), nil
}

// Ge returns One if q >= other, or they are almost equal.
func (q Quantity) Ge(other Quantity) (Quantity, error) {
	c, d, err := q.relation(other, units.OpGe)
	if err != nil {
		return Zero, err
	}
	return FromBool(c >= d || almostEqual(c, d)), nil
}

// And returns One if both q and other are true, see Bool.
// Units and imaginary parts are ignored.
func (q Quantity) And(other Quantity) Quantity {
	return FromBool(q.Bool() && other.Bool())
}

// Or returns One if either q or other is true.
func (q Quantity) Or(other Quantity) Quantity {
	return FromBool(q.Bool() || other.Bool())
}

// Xor returns One if exactly one of q and other is true.
func (q Quantity) Xor(other Quantity) Quantity {
	return FromBool(q.Bool() != other.Bool())
}
