package dimen

// Half halves d, rounding odd values towards +infinity.
func Half(d Dimen) Dimen {
	if d&1 != 0 {
		return (d + 1) / 2
	}
	return d / 2
}

// XOverN divides x by n, truncating towards zero. It returns the quotient and
// a remainder having the sign of x. Division by zero yields (0, x).
func XOverN(x Dimen, n int) (Dimen, Dimen) {
	if n == 0 {
		return 0, x
	}
	if n < 0 {
		x, n = -x, -n
	}
	q := int64(x) / int64(n)
	r := int64(x) % int64(n)
	return Dimen(q), Dimen(r)
}

// XnOverD computes x*n/d for n ≥ 0 and d > 0, truncating towards zero, and
// returns the remainder as well. The result is 0 if it exceeds MaxDimen.
func XnOverD(x Dimen, n, d int) (Dimen, Dimen) {
	if d <= 0 {
		return 0, 0
	}
	p := int64(x) * int64(n)
	q, r := p/int64(d), p%int64(d)
	if q > int64(MaxDimen) || q < -int64(MaxDimen) {
		return 0, Dimen(r)
	}
	return Dimen(q), Dimen(r)
}

// NxPlusY computes n*x+y. On overflow beyond MaxDimen the result is 0.
func NxPlusY(n int, x, y Dimen) Dimen {
	v := int64(n)*int64(x) + int64(y)
	if v > int64(MaxDimen) || v < -int64(MaxDimen) {
		return 0
	}
	return Dimen(v)
}

// MuMult multiplies a dimension expressed in math units by the width m of
// one math unit (a value in scaled points per mu).
func MuMult(x, m Dimen) Dimen {
	n, f := XOverN(m, 65536)
	if f < 0 {
		n--
		f += 65536
	}
	frac, _ := XnOverD(x, int(f), 65536)
	return NxPlusY(int(n), x, frac)
}
