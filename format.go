// Copyright 2020 Aleksandr Demakin. All rights reserved.

package calc

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/avdva/calc/units"
)

// String returns a string like "3 - 4i m".
// The imaginary part is omitted, if it is zero, the unit is omitted for plain numbers.
func (q Quantity) String() string {
	var builder strings.Builder
	q.toStringsBuilder(&builder, 'v', -1)
	return builder.String()
}

// GoString returns debug string representation.
func (q Quantity) GoString() string {
	return q.String() + fmt.Sprintf(" {%v, %v, %q, %v}", q.re, q.im, units.Text(q.units), q.isUnit)
}

// Format implements fmt.Formatter.
// %e, %f and %g (with the precision, if any) format both numeric parts, %v and %s use String.
func (q Quantity) Format(fs fmt.State, c rune) {
	var builder strings.Builder
	switch c {
	case 'v', 's':
		if c == 'v' && fs.Flag('#') {
			builder.WriteString(q.GoString())
		} else {
			q.toStringsBuilder(&builder, 'v', -1)
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if c == 'F' {
			c = 'f'
		}
		prec, ok := fs.Precision()
		if !ok {
			prec = -1
		}
		q.toStringsBuilder(&builder, byte(c), prec)
	default:
		fmt.Fprintf(fs, "%%!%c(calc.Quantity=%s)", c, q.String())
		return
	}
	s := builder.String()
	if w, ok := fs.Width(); ok {
		if diff := w - utf8.RuneCountInString(s); diff > 0 {
			if fs.Flag('-') {
				s += strings.Repeat(" ", diff)
			} else {
				s = strings.Repeat(" ", diff) + s
			}
		}
	}
	io.WriteString(fs, s)
}

func (q Quantity) toStringsBuilder(builder *strings.Builder, verb byte, prec int) {
	builder.WriteString(formatFloat(q.re, verb, prec))
	if q.im != 0 {
		if q.im < 0 {
			builder.WriteString(" - ")
		} else {
			builder.WriteString(" + ")
		}
		builder.WriteString(strings.TrimPrefix(formatFloat(math.Abs(q.im), verb, prec), "+"))
		builder.WriteRune('i')
	}
	if q.units != nil {
		builder.WriteRune(' ')
		builder.WriteString(q.units.String())
	}
}

// formatFloat uses the exponent form only for very small and very large numbers, if verb is 'v'.
func formatFloat(f float64, verb byte, prec int) string {
	if verb != 'v' {
		return strconv.FormatFloat(f, verb, prec, 64)
	}
	if abs := math.Abs(f); f == 0 || abs >= 1e-5 && abs < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
