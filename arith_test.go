// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"errors"
	"fmt"
	"math"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avdva/calc/units"
)

func TestNeg(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		q, result Quantity
	}{
		{New(2), New(-2)},
		{Zero, New(math.Copysign(0, -1))},
		{WithUnit(-3, meter), WithUnit(3, meter)},
		{ComplexWithUnit(1, 2, meter), ComplexWithUnit(-1, -2, meter)},
		{FromUnit(meter), newQuantity(-1, 0, meter, true)},
		{PositiveInfinity, NegativeInfinity},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertQuantity(a, test.result, test.q.Neg())
		})
	}
	// negation changes the sign of the imaginary part too.
	for _, im := range []float64{0, 1.5, -7} {
		a.Equal(-im, ComplexWithUnit(4, im, foot).Neg().Im())
	}
}

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b     Quantity
		sum, sub Quantity
		err      string
	}{
		{New(1), New(2), New(3), New(-1), ""},
		{New(0.5), New(-0.25), New(0.25), New(0.75), ""},
		{WithUnit(1, meter), WithUnit(1, foot), WithUnit(1.3048, meter), WithUnit(0.6952, meter), ""},
		{WithUnit(1, foot), WithUnit(1, meter), WithUnit(1+1/0.3048, foot), WithUnit(1-1/0.3048, foot), ""},
		{WithUnit(1, km), WithUnit(1, meter), WithUnit(1.001, km), WithUnit(0.999, km), ""},
		{New(1), WithUnit(50, percent), New(1.5), New(0.5), ""},
		{WithUnit(50, percent), New(1), WithUnit(150, percent), WithUnit(-50, percent), ""},
		{ComplexWithUnit(1, 5, meter), ComplexWithUnit(1, 5, meter), WithUnit(2, meter), WithUnit(0, meter), ""},
		{FromUnit(meter), FromUnit(meter), WithUnit(2, meter), WithUnit(0, meter), ""},
		{PositiveInfinity, PositiveInfinity, PositiveInfinity, NaN, ""},
		{WithUnit(1, meter), WithUnit(1, second), Zero, Zero, `inconsistent units: "m" %s "s"`},
		{New(1), WithUnit(1, meter), Zero, Zero, `inconsistent units: "dimensionless" %s "m"`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sum, err := test.a.Add(test.b)
			if len(test.err) > 0 {
				a.EqualError(err, fmt.Sprintf(test.err, "+"))
				a.True(errors.Is(err, units.ErrInconsistentUnits))
			} else if a.NoError(err) {
				assertQuantity(a, test.sum, sum)
			}
			sub, err := test.a.Sub(test.b)
			if len(test.err) > 0 {
				a.EqualError(err, fmt.Sprintf(test.err, "-"))
			} else if a.NoError(err) {
				assertQuantity(a, test.sub, sub)
			}
		})
	}
}

func TestDimensionlessArithmetic(t *testing.T) {
	a := assert.New(t)
	values := []float64{0, 1, -1, 0.1, 3.5, -1234.5678, 1e-20, 7e200}
	for _, x := range values {
		for _, y := range values {
			qx, qy := New(x), New(y)
			sum, err := qx.Add(qy)
			a.NoError(err)
			a.Equal(x+y, sum.Re())
			sub, err := qx.Sub(qy)
			a.NoError(err)
			a.Equal(x-y, sub.Re())
			a.Equal(x*y, qx.Mul(qy).Re())
			if y != 0 {
				a.Equal(x/y, qx.Div(qy).Re())
				rem, err := qx.Rem(qy)
				a.NoError(err)
				a.Equal(math.Mod(x, y), rem.Re())
			}
		}
	}
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	mps := mustDivide(meter, second)
	tests := []struct {
		a, b, result Quantity
	}{
		{New(2), New(3), New(6)},
		{New(2), WithUnit(50, percent), New(1)},
		{New(2), FromUnit(percent), WithUnit(2, percent)},
		{New(2), WithUnit(3, meter), WithUnit(6, meter)},
		{New(2), FromUnit(meter), WithUnit(2, meter)},
		{WithUnit(2, meter), New(3), WithUnit(6, meter)},
		{WithUnit(2, meter), WithUnit(3, foot), WithUnit(6*0.3048, mustMultiply(meter, meter))},
		{WithUnit(2, meter), WithUnit(3, second), WithUnit(6, mustMultiply(meter, second))},
		{WithUnit(4, meter), WithUnit(50, percent), WithUnit(2, meter)},
		{WithUnit(4, mps), WithUnit(2, second), WithUnit(8, meter)},
		{FromUnit(meter), FromUnit(second), WithUnit(1, mustMultiply(meter, second))},
		{ComplexWithUnit(2, 1, meter), ComplexWithUnit(3, 1, meter), WithUnit(6, mustMultiply(meter, meter))},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertQuantity(a, test.result, test.a.Mul(test.b))
		})
	}
}

func TestMultiply(t *testing.T) {
	a := assert.New(t)
	mft, _ := units.Multiply(meter, foot, true)
	tests := []struct {
		a, b, result Quantity
	}{
		{New(2), New(3), New(6)},
		{New(3), FromUnit(meter), WithUnit(3, meter)},
		{New(2), WithUnit(50, percent), New(1)},
		{FromUnit(meter), FromUnit(second), newQuantity(1, 0, mustMultiply(meter, second), true)},
		{WithUnit(2, meter), FromUnit(second), WithUnit(2, mustMultiply(meter, second))},
		{FromUnit(meter), WithUnit(2, second), WithUnit(2, mustMultiply(meter, second))},
		{FromUnit(meter), FromUnit(foot), newQuantity(1, 0, mft, true)},
		{WithUnit(2, meter), WithUnit(3, foot), WithUnit(6*0.3048, mustMultiply(meter, meter))},
		{FromUnit(kilonewt), FromUnit(meter), newQuantity(1, 0, mustMultiply(kilonewt, meter), true)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertQuantity(a, test.result, Multiply(test.a, test.b))
		})
	}
	a.False(FromUnit(meter).Mul(FromUnit(second)).IsUnit(), "Mul doesn't keep unit literals")
}

func TestDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Quantity
	}{
		{New(6), New(3), New(2)},
		{WithUnit(6, meter), WithUnit(2, second), WithUnit(3, mustDivide(meter, second))},
		{WithUnit(6, meter), WithUnit(2, foot), New(3 / 0.3048)},
		{WithUnit(6, meter), WithUnit(2, meter), New(3)},
		{New(1), WithUnit(50, percent), New(2)},
		{New(2), WithUnit(4, second), WithUnit(0.5, mustDivide(nil, second))},
		{New(1), New(0), PositiveInfinity},
		{New(-1), New(0), NegativeInfinity},
		{New(0), New(0), NaN},
		{FromUnit(meter), FromUnit(second), WithUnit(1, mustDivide(meter, second))},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertQuantity(a, test.result, test.a.Div(test.b))
		})
	}
}

func TestDivide(t *testing.T) {
	a := assert.New(t)
	mPerFt, _ := units.Divide(meter, foot, true)
	tests := []struct {
		a, b, result Quantity
	}{
		{FromUnit(meter), FromUnit(second), newQuantity(1, 0, mustDivide(meter, second), true)},
		{FromUnit(meter), FromUnit(meter), New(1)},
		{WithUnit(6, meter), FromUnit(foot), WithUnit(6, mPerFt)},
		{FromUnit(meter), FromUnit(foot), newQuantity(1, 0, mPerFt, true)},
		{WithUnit(6, meter), WithUnit(2, foot), New(3 / 0.3048)},
		{New(1), FromUnit(second), WithUnit(1, mustDivide(nil, second))},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assertQuantity(a, test.result, Divide(test.a, test.b))
		})
	}
}

func TestScale(t *testing.T) {
	a := assert.New(t)
	assertQuantity(a, WithUnit(6, meter), WithUnit(2, meter).Scale(3))
	assertQuantity(a, New(-1), New(2).Scale(-0.5))
	assertQuantity(a, WithUnit(2, meter), FromUnit(meter).Scale(2))
	assertQuantity(a, WithUnit(2, meter), ComplexWithUnit(1, 1, meter).Scale(2))
}

func TestRem(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, result Quantity
		err          string
	}{
		{New(7), New(3), New(1), ""},
		{New(-7), New(3), New(-1), ""},
		{New(7), New(-3), New(1), ""},
		{WithUnit(7.5, meter), New(2), WithUnit(1.5, meter), ""},
		{FromUnit(meter), New(2), WithUnit(1, meter), ""},
		{New(7), New(0), NaN, ""},
		{New(7), WithUnit(3, meter), Zero, `cannot evaluate remainder for units "" and "m"`},
		{WithUnit(7, second), WithUnit(3, percent), Zero, `cannot evaluate remainder for units "s" and "%"`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			rem, err := test.a.Rem(test.b)
			if len(test.err) == 0 {
				if a.NoError(err) {
					assertQuantity(a, test.result, rem)
				}
				return
			}
			a.EqualError(err, test.err)
			a.True(errors.Is(err, ErrRemainderUnits))
			var re *RemainderError
			if a.True(errors.As(err, &re)) {
				bu, _ := test.b.Units()
				a.Equal(units.Text(bu), re.Right)
			}
		})
	}
}

func TestIntDiv(t *testing.T) {
	a := assert.New(t)
	mps := mustDivide(meter, second)
	tests := []struct {
		a, b, result Quantity
	}{
		{New(7), New(2), New(3)},
		{New(-7), New(2), New(-3)},
		{New(6), New(2), New(3)},
		{WithUnit(7, meter), WithUnit(2, second), WithUnit(3, mps)},
		{WithUnit(1, km), WithUnit(300, meter), New(3)},
		{New(5), New(0), NaN},
		{New(0), New(0), NaN},
		{WithUnit(5, meter), WithUnit(0, second), WithUnit(math.NaN(), mps)},
		{FromUnit(meter), FromUnit(second), newQuantity(1, 0, mps, true)},
		{FromUnit(meter), FromUnit(meter), New(1)},
		{New(1), New(math.Inf(1)), New(0)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var result Quantity
			a.NotPanics(func() { result = IntDiv(test.a, test.b) })
			assertQuantity(a, test.result, result)
		})
	}
}

func mustMultiply(a, b *units.Unit) *units.Unit {
	u, _ := units.Multiply(a, b, false)
	return u
}

func BenchmarkAdd(b *testing.B) {
	q1, q2 := WithUnit(123456789.9, meter), WithUnit(1234.9, foot)
	for i := 0; i < b.N; i++ {
		q1.Add(q2)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)
	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkAddFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)
	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkMul(b *testing.B) {
	q1, q2 := WithUnit(123456789.0, meter), WithUnit(1234.0, second)
	for i := 0; i < b.N; i++ {
		q1.Mul(q2)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.0)
	f1 := decimal.NewFromFloat(1234.0)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulFixed(b *testing.B) {
	f0 := of.NewF(123456789.0)
	f1 := of.NewF(1234.0)
	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}
