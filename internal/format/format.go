// Package format renders calculation results in the styles offered by the
// formatting submenu: decimal, fraction, scientific, and sexagesimal.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxDenominator bounds fraction approximation so float rounding
// noise does not produce absurd denominators (0.3333333 stays 1/3).
const DefaultMaxDenominator = 1000

// Decimal returns the shortest decimal text that round-trips the value.
func Decimal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// Whole values keep a trailing ".0" so results read as floats.
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}

// Scientific renders the value in scientific notation with two decimal
// places, matching the submenu's fixed precision.
func Scientific(v float64) string {
	return fmt.Sprintf("%.2e", v)
}

// Sexagesimal splits a value into degrees, minutes, and seconds, with
// seconds rounded to two decimal places.
func Sexagesimal(v float64) (deg int, min int, sec float64) {
	frac, whole := math.Modf(v)
	minFrac, minWhole := math.Modf(frac * 60)
	sec = math.Round(minFrac*60*100) / 100
	return int(whole), int(minWhole), sec
}

// SexagesimalString renders the degree/minute/second form for display.
func SexagesimalString(v float64) string {
	d, m, s := Sexagesimal(v)
	return fmt.Sprintf("%d˚ %d' %v''", d, m, s)
}

// Fraction returns the simplest fraction approximating v with denominator
// at most maxDenominator, reduced to lowest terms. Values that cannot be
// cleanly rationalized (NaN, Inf) fall back to decimal text, as do whole
// numbers; Fraction never fails.
func Fraction(v float64, maxDenominator int) string {
	if maxDenominator < 1 {
		maxDenominator = DefaultMaxDenominator
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal(v)
	}
	if v == math.Trunc(v) {
		return Decimal(v)
	}

	num, den := approximate(v, int64(maxDenominator))
	if den == 1 {
		return Decimal(float64(num))
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// approximate finds the best rational approximation num/den to v with
// den <= maxDen, walking the continued-fraction convergents.
func approximate(v float64, maxDen int64) (int64, int64) {
	neg := v < 0
	if neg {
		v = -v
	}

	// Convergents p/q of the continued fraction expansion.
	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	x := v
	for {
		a := int64(math.Floor(x))
		if q1*a+q0 > maxDen {
			break
		}
		p0, q0, p1, q1 = p1, q1, p1*a+p0, q1*a+q0
		frac := x - math.Floor(x)
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}

	// A semiconvergent between the last two convergents may be closer.
	if q1 != 0 {
		k := (maxDen - q0) / q1
		bp, bq := p1*k+p0, q1*k+q0
		if bq > 0 && math.Abs(float64(bp)/float64(bq)-v) < math.Abs(float64(p1)/float64(q1)-v) {
			p1, q1 = bp, bq
		}
	}
	if q1 == 0 {
		p1, q1 = p0, q0
	}

	g := gcd(p1, q1)
	if g > 1 {
		p1 /= g
		q1 /= g
	}
	if neg {
		p1 = -p1
	}
	return p1, q1
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
