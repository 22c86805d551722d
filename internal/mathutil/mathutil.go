// Package mathutil holds the float and complex primitives shared by calc and its unit algebra.
package mathutil

import (
	"math"
	"math/cmplx"
)

// Kind classifies a (re, im) pair.
type Kind int

const (
	// KindReal means the imaginary part is zero or negligible.
	KindReal Kind = iota
	// KindImaginary means the real part is negligible against a nonzero imaginary part.
	KindImaginary
	// KindComplex means both parts are significant.
	KindComplex
)

// negligible is the relative magnitude below which one part of a complex
// number does not change its classification.
const negligible = 1e-14

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindImaginary:
		return "imaginary"
	default:
		return "complex"
	}
}

// Classify returns the kind of the complex number re + im*i.
func Classify(re, im float64) Kind {
	if im == 0 || math.Abs(im) < negligible*math.Abs(re) {
		return KindReal
	}
	if re == 0 || math.Abs(re) < negligible*math.Abs(im) {
		return KindImaginary
	}
	return KindComplex
}

// Abs returns the magnitude of re + im*i.
func Abs(re, im float64) float64 {
	if im == 0 {
		return math.Abs(re)
	}
	return cmplx.Abs(complex(re, im))
}

// SquaredAbs returns re² + im².
func SquaredAbs(re, im float64) float64 {
	return re*re + im*im
}

// AlmostEqual reports whether a and b differ by no more than eps relative to the larger magnitude.
// Below magnitude 1 the tolerance is absolute.
// Equal infinities are equal, NaN is never equal to anything.
func AlmostEqual(a, b, eps float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// SameFloat is an equality where NaN equals NaN, so that it stays reflexive.
func SameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// PowInt returns x^n for an integer exponent by repeated squaring.
func PowInt(x float64, n int) float64 {
	if n < 0 {
		return 1 / PowInt(x, -n)
	}
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// AbsInt returns |val|.
func AbsInt(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
