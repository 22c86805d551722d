// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package units implements the unit algebra used by calc quantities.
//
// A Unit is a product of named atoms (m, kg, ft, N, %...) raised to integer powers.
// Units are interned: two units with the same atoms and powers are the same *Unit,
// and a *Unit is never modified after it has been created.
// A nil *Unit stands for "no unit", and all functions and methods accept it.
package units

import (
	"strconv"
	"strings"
	"sync"

	"github.com/avdva/calc/internal/mathutil"
)

// Dimension is an SI base dimension.
type Dimension int

const (
	Mass Dimension = iota
	Length
	Time
	Current
	Temperature
	Substance
	Luminosity
	NumDimensions
)

var dimensionNames = [NumDimensions]string{
	"mass", "length", "time", "current", "temperature", "substance", "luminosity",
}

func (d Dimension) String() string {
	if d < 0 || d >= NumDimensions {
		return "dimension(" + strconv.Itoa(int(d)) + ")"
	}
	return dimensionNames[d]
}

// Dimensions is a vector of base dimension exponents.
type Dimensions [NumDimensions]int

// IsZero returns true for a dimensionless vector.
func (d Dimensions) IsZero() bool {
	return d == Dimensions{}
}

func (d Dimensions) add(other Dimensions, pow int) Dimensions {
	for i := range d {
		d[i] += other[i] * pow
	}
	return d
}

// atom is a registered named unit.
type atom struct {
	name  string
	dims  Dimensions
	scale float64 // value in coherent SI = value * scale
}

type term struct {
	atom *atom
	pow  int
}

// Unit is an immutable, interned unit descriptor.
type Unit struct {
	terms []term
	dims  Dimensions
	scale float64
	text  string
	key   string
}

type registry struct {
	mu    sync.RWMutex
	atoms map[string]*atom
	units map[string]*Unit
}

var defaultRegistry = &registry{
	atoms: make(map[string]*atom),
	units: make(map[string]*Unit),
}

func (r *registry) atom(name string) (*atom, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.atoms[name]
	return a, ok
}

// intern returns the unit for terms. terms must not contain zero powers and must not be empty.
func (r *registry) intern(terms []term) *Unit {
	key := signature(terms)
	r.mu.RLock()
	u, ok := r.units[key]
	r.mu.RUnlock()
	if ok {
		return u
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.units[key]; ok {
		return u
	}
	u = newUnit(terms, key)
	r.units[key] = u
	return u
}

func newUnit(terms []term, key string) *Unit {
	u := &Unit{
		terms: append([]term(nil), terms...),
		scale: 1,
		key:   key,
	}
	for _, t := range terms {
		u.dims = u.dims.add(t.atom.dims, t.pow)
		u.scale *= mathutil.PowInt(t.atom.scale, t.pow)
	}
	u.text = render(terms)
	return u
}

func signature(terms []term) string {
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.atom.name)
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(t.pow))
	}
	return b.String()
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func writePower(b *strings.Builder, pow int) {
	if pow == 1 {
		return
	}
	for _, r := range strconv.Itoa(pow) {
		b.WriteRune(superscripts[r])
	}
}

// render produces texts like "kg·m/s²", "1/s" or "N/(m·s)".
func render(terms []term) string {
	var num, den strings.Builder
	var denCount int
	for _, t := range terms {
		b := &num
		if t.pow < 0 {
			b = &den
			denCount++
		}
		if b.Len() > 0 {
			b.WriteRune('·')
		}
		b.WriteString(t.atom.name)
		writePower(b, mathutil.AbsInt(t.pow))
	}
	if den.Len() == 0 {
		return num.String()
	}
	s := num.String()
	if len(s) == 0 {
		s = "1"
	}
	if denCount > 1 {
		return s + "/(" + den.String() + ")"
	}
	return s + "/" + den.String()
}

// Lookup returns the unit for a registered atom name.
func Lookup(name string) (*Unit, bool) {
	a, ok := defaultRegistry.atom(name)
	if !ok {
		return nil, false
	}
	return defaultRegistry.intern([]term{{atom: a, pow: 1}}), true
}

// MustLookup is like Lookup, but panics for unknown names.
func MustLookup(name string) *Unit {
	u, ok := Lookup(name)
	if !ok {
		panic("units: unknown unit " + strconv.Quote(name))
	}
	return u
}

// Text returns the textual form of u, or an empty string for nil.
func Text(u *Unit) string {
	if u == nil {
		return ""
	}
	return u.text
}

// String returns the textual form of u.
func (u *Unit) String() string {
	return Text(u)
}

// Dimensions returns u's dimension vector.
func (u *Unit) Dimensions() Dimensions {
	if u == nil {
		return Dimensions{}
	}
	return u.dims
}

// Scale returns the factor converting a value in u into coherent SI units.
func (u *Unit) Scale() float64 {
	if u == nil {
		return 1
	}
	return u.scale
}

// IsDimensionless returns true if u's dimension vector is zero, like % or m/ft.
func (u *Unit) IsDimensionless() bool {
	return u.Dimensions().IsZero()
}

// DimensionlessFactor returns the plain-number multiplier of a dimensionless unit (0.01 for %).
// It is 1 for dimensioned units.
func (u *Unit) DimensionlessFactor() float64 {
	if !u.IsDimensionless() {
		return 1
	}
	return u.Scale()
}

// Equal returns true if u and other describe the same unit.
func (u *Unit) Equal(other *Unit) bool {
	return Equal(u, other)
}

// Equal returns true if a and b describe the same unit. Two nil units are equal.
func Equal(a, b *Unit) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.key == b.key
}
