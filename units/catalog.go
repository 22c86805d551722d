// Copyright 2020 Aleksandr Demakin. All rights reserved.

package units

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

type catalogEntry struct {
	Name  string         `yaml:"name"`
	Dims  map[string]int `yaml:"dims"`
	Scale string         `yaml:"scale"`
}

type catalogFile struct {
	Units []catalogEntry `yaml:"units"`
}

func init() {
	if err := LoadCatalog(bytes.NewReader(builtinCatalog)); err != nil {
		panic(err)
	}
}

// LoadCatalog registers the atoms from a yaml document like
//
//	units:
//	  - {name: ft, dims: {length: 1}, scale: "0.0254*12"}
//
// Either all the atoms are registered, or none of them.
// Like Register, it should be called on program start.
func LoadCatalog(r io.Reader) error {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decoding catalog: %w", err)
	}
	atoms := make([]*atom, 0, len(f.Units))
	seen := make(map[string]bool, len(f.Units))
	for _, e := range f.Units {
		a, err := e.atom()
		if err != nil {
			return err
		}
		if seen[a.name] {
			return fmt.Errorf("unit %q is declared twice", a.name)
		}
		seen[a.name] = true
		atoms = append(atoms, a)
	}
	return defaultRegistry.register(atoms...)
}

// Register adds an atom with the given dimensions and SI scale.
func Register(name string, dims Dimensions, scale float64) error {
	if err := checkName(name); err != nil {
		return err
	}
	if !(scale > 0) {
		return fmt.Errorf("unit %q: bad scale %v", name, scale)
	}
	return defaultRegistry.register(&atom{name: name, dims: dims, scale: scale})
}

func (r *registry) register(atoms ...*atom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range atoms {
		if _, found := r.atoms[a.name]; found {
			return fmt.Errorf("unit %q is already registered", a.name)
		}
	}
	for _, a := range atoms {
		r.atoms[a.name] = a
	}
	return nil
}

func (e catalogEntry) atom() (*atom, error) {
	if err := checkName(e.Name); err != nil {
		return nil, err
	}
	a := &atom{name: e.Name}
	for key, pow := range e.Dims {
		d, err := parseDimension(key)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", e.Name, err)
		}
		a.dims[d] = pow
	}
	scale, err := parseScale(e.Scale)
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", e.Name, err)
	}
	a.scale = scale
	return a, nil
}

func checkName(name string) error {
	if len(name) == 0 || strings.ContainsAny(name, " ·/^*()") {
		return fmt.Errorf("bad unit name %q", name)
	}
	return nil
}

func parseDimension(s string) (Dimension, error) {
	for i, name := range dimensionNames {
		if name == s {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

// parseScale reduces expressions like "0.0254*12" or "5/9" exactly before converting them to a float.
func parseScale(s string) (float64, error) {
	if len(strings.TrimSpace(s)) == 0 {
		return 0, errors.New("empty scale")
	}
	var result decimal.Decimal
	op, start := byte(0), 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '*' && s[i] != '/' {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s[start:i]))
		if err != nil {
			return 0, fmt.Errorf("bad scale %q: %w", s, err)
		}
		switch op {
		case 0:
			result = d
		case '*':
			result = result.Mul(d)
		default:
			if d.IsZero() {
				return 0, fmt.Errorf("bad scale %q: division by zero", s)
			}
			result = result.Div(d)
		}
		if i < len(s) {
			op = s[i]
		}
		start = i + 1
	}
	if result.Sign() <= 0 {
		return 0, fmt.Errorf("bad scale %q: must be positive", s)
	}
	f, _ := result.Float64()
	return f, nil
}
