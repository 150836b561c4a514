/*
Package dimen implements scaled fixed-point dimensions as used by TeX.

A Dimen counts "scaled points": 2^16 sp make up one printer's point. All
arithmetic of the math list converter is done on these integers, with
rounding and truncation rules that follow TeX to the letter, so that results
are reproducible across platforms.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dimen

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Dimen is a dimension in scaled points.
type Dimen int32

// Units.
const (
	SP   Dimen = 1
	PT   Dimen = 65536
	BP   Dimen = 65782   // big point, 1/72 inch
	MM   Dimen = 186467  // millimeter
	CM   Dimen = 1864679 // centimeter
	IN   Dimen = 4736286 // inch
	PC   Dimen = 786432  // pica
	DD   Dimen = 70124   // didot point
	CC   Dimen = 841489  // cicero
	MU   Dimen = PT      // math unit, meaningful only relative to a math quad
	Zero Dimen = 0
)

// MaxDimen is the largest legal dimension, 2^30-1 sp.
const MaxDimen Dimen = 07777777777

// Points returns d in printer's points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(PT)
}

// String prints d in points, in the manner of TeX's print_scaled.
func (d Dimen) String() string {
	return printScaled(d) + "pt"
}

func printScaled(d Dimen) string {
	s := int64(d)
	sign := ""
	if s < 0 {
		sign = "-"
		s = -s
	}
	out := fmt.Sprintf("%s%d.", sign, s/65536)
	s = 10*(s%65536) + 5
	delta := int64(10)
	for {
		if delta > 65536 {
			s = s + 0100000 - 50000 // round the last digit
		}
		out += string(rune('0' + s/65536))
		s = 10 * (s % 65536)
		delta *= 10
		if s <= delta {
			break
		}
	}
	return out
}

// Fixed converts d to 26.6 fixed point, truncating the lower ten bits.
func (d Dimen) Fixed() fixed.Int26_6 {
	return fixed.Int26_6(d >> 10)
}

// FromFixed converts a 26.6 fixed point value to scaled points.
func FromFixed(x fixed.Int26_6) Dimen {
	return Dimen(x) << 10
}

// FromPoints converts a float value in points to scaled points, rounded.
func FromPoints(pt float64) Dimen {
	if pt < 0 {
		return -Dimen(-pt*65536 + 0.5)
	}
	return Dimen(pt*65536 + 0.5)
}

// Max returns the larger of a and b.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Abs returns |d|.
func Abs(d Dimen) Dimen {
	if d < 0 {
		return -d
	}
	return d
}
