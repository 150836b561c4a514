package dimen

import (
	"fmt"
	"strings"
)

// unit conversion ratios num/denom relative to printer's points
var units = map[string]struct{ num, denom int }{
	"pt": {1, 1},
	"in": {7227, 100},
	"pc": {12, 1},
	"cm": {7227, 254},
	"mm": {7227, 2540},
	"bp": {7227, 7200},
	"dd": {1238, 1157},
	"cc": {14856, 1157},
	"mu": {1, 1},
}

func errDimen(format string, args ...interface{}) error {
	return fmt.Errorf("dimension: "+format, args...)
}

// Parse reads a dimension such as "1.2pt", "-3mu" or "10sp". Conversion is
// exact in the way TeX converts decimal constants. Math units are returned
// scaled by 2^16 per mu; callers must remember that the value is in mu.
func Parse(s string) (Dimen, error) {
	d, _, err := ParseUnit(s)
	return d, err
}

// ParseUnit is like Parse but returns the unit found as well.
func ParseUnit(s string) (Dimen, string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return 0, "", errDimen("cannot parse %q", s)
	}
	unit := strings.ToLower(s[len(s)-2:])
	num := strings.TrimSpace(s[:len(s)-2])
	negative := false
	for len(num) > 0 && (num[0] == '-' || num[0] == '+') {
		if num[0] == '-' {
			negative = !negative
		}
		num = num[1:]
	}
	if num == "" {
		return 0, "", errDimen("missing number in %q", s)
	}
	ipart, fpart, _ := strings.Cut(num, ".")
	i := 0
	for _, ch := range ipart {
		if ch < '0' || ch > '9' {
			return 0, "", errDimen("illegal digit in %q", s)
		}
		i = 10*i + int(ch-'0')
		if i > 16383 {
			return 0, "", errDimen("dimension too large: %q", s)
		}
	}
	var digs []int
	for _, ch := range fpart {
		if ch < '0' || ch > '9' {
			return 0, "", errDimen("illegal digit in %q", s)
		}
		if len(digs) < 17 {
			digs = append(digs, int(ch-'0'))
		}
	}
	f := roundDecimals(digs)
	var v Dimen
	if unit == "sp" {
		v = Dimen(i)
	} else {
		ratio, ok := units[unit]
		if !ok {
			return 0, "", errDimen("unknown unit %q", unit)
		}
		if ratio.num != 1 || ratio.denom != 1 {
			q, r := XnOverD(Dimen(i), ratio.num, ratio.denom)
			fr := (int64(ratio.num)*int64(f) + 65536*int64(r)) / int64(ratio.denom)
			i = int(q) + int(fr/65536)
			f = Dimen(fr % 65536)
		}
		if i > 16383 {
			return 0, "", errDimen("dimension too large: %q", s)
		}
		v = Dimen(i)*PT + f
	}
	if negative {
		v = -v
	}
	return v, unit, nil
}

// roundDecimals converts a sequence of decimal digits after the decimal point
// to a binary fraction of 2^16.
func roundDecimals(digs []int) Dimen {
	a := 0
	for k := len(digs) - 1; k >= 0; k-- {
		a = (a + digs[k]*0400000) / 10
	}
	return Dimen((a + 1) / 2)
}
