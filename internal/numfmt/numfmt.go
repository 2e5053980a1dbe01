// Package numfmt formats numbers and value/uncertainty pairs as text or
// LaTeX math tokens.
//
// It covers the three numeric paths used when rendering table cells:
//
//   - [Format] applies a printf-like specifier to a single value.
//   - [Pair.Format] renders a value with its uncertainty, either as
//     "v \pm e" or in the shorthand "v(e)" notation.
//   - [Scientific] renders a value in scientific notation as a math token
//     such as "1.23 \times 10^{-4}".
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Raw renders v using the fewest digits that represent it exactly.
func Raw(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Fixed renders v with prec digits after the decimal point.
func Fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Scientific renders v in scientific notation with prec mantissa decimals,
// as a LaTeX math token. A zero exponent is omitted.
func Scientific(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return `\mathrm{NaN}`
	case math.IsInf(v, 1):
		return `\infty`
	case math.IsInf(v, -1):
		return `-\infty`
	}
	mant, exp := splitExp(strconv.FormatFloat(v, 'e', prec, 64))
	if exp == 0 {
		return mant
	}
	return mant + ` \times 10^{` + strconv.Itoa(exp) + `}`
}

// ScientificPlain renders v in scientific notation without markup.
func ScientificPlain(v float64, prec int) string {
	return strconv.FormatFloat(v, 'e', prec, 64)
}

// AllZeros reports whether s is a rendered number whose digits are all zero,
// such as "0.000" or "-0.0".
func AllZeros(s string) bool {
	digits := false
	for _, r := range s {
		switch {
		case r == '0':
			digits = true
		case r == '.' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return digits
}

func splitExp(s string) (string, int) {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s, 0
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s, 0
	}
	return mant, n
}

// magnitude returns the decimal exponent of x, or 0 for zero and non-finite
// values.
func magnitude(x float64) int {
	x = math.Abs(x)
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	return int(math.Floor(math.Log10(x)))
}

// roundDecimals renders v rounded to d decimals. Negative d rounds to tens,
// hundreds and so on.
func roundDecimals(v float64, d int) string {
	if d >= 0 {
		return strconv.FormatFloat(v, 'f', d, 64)
	}
	scale := math.Pow10(-d)
	return strconv.FormatFloat(math.Round(v/scale)*scale, 'f', 0, 64)
}
