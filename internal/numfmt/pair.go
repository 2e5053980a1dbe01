package numfmt

import (
	"fmt"
	"math"
	"strconv"
)

// defaultUncertDigits is the number of significant uncertainty digits used
// when a specifier gives no precision.
const defaultUncertDigits = 2

// Pair is a value bound with its uncertainty.
type Pair struct {
	Value float64
	Err   float64
}

// String renders the pair unformatted as "v±e".
func (p Pair) String() string {
	return Raw(p.Value) + "±" + Raw(math.Abs(p.Err))
}

// Latex renders the pair unformatted as the math token "v \pm e".
func (p Pair) Latex() string {
	return Raw(p.Value) + ` \pm ` + Raw(math.Abs(p.Err))
}

// Format renders the pair according to spec (see [Spec]). With the L option
// the result is a LaTeX math token, otherwise plain text using "±".
func (p Pair) Format(spec string) (string, error) {
	sp, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	v, e := p.Value, math.Abs(p.Err)
	if math.IsNaN(v) || math.IsInf(v, 0) || math.IsNaN(e) || math.IsInf(e, 0) {
		return "", fmt.Errorf("%w: %q: non-finite pair %v", ErrBadSpec, spec, p)
	}

	verb := sp.Verb
	if verb == '%' {
		v, e = v*100, e*100
	}
	if verb == 0 || verb == 'g' || verb == 'G' {
		ref := magnitude(v)
		if v == 0 {
			ref = magnitude(e)
		}
		if ref < -4 || ref >= 6 {
			verb = 'e'
		} else {
			verb = 'f'
		}
	}
	exp := 0
	scientific := verb == 'e' || verb == 'E'
	if scientific {
		exp = magnitude(v)
		if v == 0 {
			exp = magnitude(e)
		}
		scale := math.Pow10(exp)
		v, e = v/scale, e/scale
	}

	var vs, es string
	decimals := 0
	if e == 0 && sp.Precision < 0 {
		vs, es = Raw(v), "0"
	} else {
		decimals = pairDecimals(sp, e)
		vs, es = roundDecimals(v, decimals), roundDecimals(e, decimals)
	}
	vs = sign(vs, v, sp.Sign)

	var body string
	switch {
	case sp.Shorthand:
		body = vs + "(" + shortErr(e, decimals, es) + ")"
	case sp.Latex:
		body = vs + ` \pm ` + es
	default:
		body = vs + "±" + es
	}

	switch {
	case scientific && sp.Latex:
		if sp.Shorthand {
			return body + ` \times 10^{` + strconv.Itoa(exp) + `}`, nil
		}
		return `\left(` + body + `\right) \times 10^{` + strconv.Itoa(exp) + `}`, nil
	case scientific:
		if sp.Shorthand {
			return fmt.Sprintf("%se%+03d", body, exp), nil
		}
		return fmt.Sprintf("(%s)e%+03d", body, exp), nil
	case sp.Verb == '%' && sp.Latex:
		if sp.Shorthand {
			return body + `\%`, nil
		}
		return `\left(` + body + `\right) \%`, nil
	case sp.Verb == '%':
		if sp.Shorthand {
			return body + "%", nil
		}
		return "(" + body + ")%", nil
	}
	return body, nil
}

// pairDecimals returns how many decimals both members of a pair are rounded
// to. Without a precision, or with the u flag, the precision counts
// significant digits of the uncertainty.
func pairDecimals(sp Spec, e float64) int {
	if sp.Precision >= 0 && !sp.Uncert {
		return sp.Precision
	}
	sig := defaultUncertDigits
	if sp.Uncert && sp.Precision > 0 {
		sig = sp.Precision
	}
	if e == 0 {
		return max(sig-1, 0)
	}
	return sig - 1 - magnitude(e)
}

// shortErr renders the uncertainty for the "v(e)" notation: the digits of
// e at the precision of the value's last decimal.
func shortErr(e float64, decimals int, rendered string) string {
	if decimals <= 0 {
		return rendered
	}
	return strconv.FormatFloat(math.Round(e*math.Pow10(decimals)), 'f', 0, 64)
}
