// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/avdva/calc/units"
)

var (
	// JSONMode defines the way all quantities are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces quantities as strings, like `"3 + 4i m"`.
	JSONModeString = iota
	// JSONModeObject marshals quantities as objects, like `{"re":3,"im":4,"unit":"m"}`.
	// Zero imaginary parts, nil units and false unit flags are omitted.
	JSONModeObject
)

type jsonQuantity struct {
	Re     float64 `json:"re"`
	Im     float64 `json:"im,omitempty"`
	Unit   string  `json:"unit,omitempty"`
	IsUnit bool    `json:"isUnit,omitempty"`
}

// MarshalJSON marshals q according to current JSONMode.
// Non-finite numbers can't be marshaled as objects.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.toJSON(JSONMode)
}

func (q Quantity) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeObject:
		if !isFinite(q.re) || !isFinite(q.im) {
			return nil, fmt.Errorf("calc: unsupported json value %v", q)
		}
		return json.Marshal(jsonQuantity{Re: q.re, Im: q.im, Unit: units.Text(q.units), IsUnit: q.isUnit})
	default:
		var builder strings.Builder
		q.toStringsBuilder(&builder, 'v', -1)
		return json.Marshal(builder.String())
	}
}

// MarshalYAML implements yaml.Marshaler, quantities are written as strings.
func (q Quantity) MarshalYAML() (interface{}, error) {
	return q.String(), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
