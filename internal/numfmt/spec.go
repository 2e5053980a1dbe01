package numfmt

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadSpec is returned for format specifiers that cannot be parsed or that
// request an option the formatted value does not support.
var ErrBadSpec = errors.New("bad format specifier")

// Spec is a parsed numeric format specifier of the form
//
//	[sign][.precision][u][type][options]
//
// where sign is one of "+", "-" or " ", type is one of f F e E g G %, and
// options is any combination of S (shorthand "value(uncertainty)") and L
// (LaTeX output). The u flag makes the precision count significant digits of
// the uncertainty instead of decimal places.
type Spec struct {
	Sign      byte
	Precision int // -1 when absent
	Uncert    bool
	Verb      byte // 0 when absent
	Shorthand bool
	Latex     bool
}

// ParseSpec parses s into a Spec.
func ParseSpec(s string) (Spec, error) {
	sp := Spec{Precision: -1}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-' || s[i] == ' ') {
		sp.Sign = s[i]
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return Spec{}, fmt.Errorf("%w: %q: missing precision after '.'", ErrBadSpec, s)
		}
		p, err := strconv.Atoi(s[start:i])
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q: %v", ErrBadSpec, s, err)
		}
		sp.Precision = p
	}
	if i < len(s) && s[i] == 'u' {
		sp.Uncert = true
		i++
	}
	if i < len(s) {
		switch s[i] {
		case 'f', 'F', 'e', 'E', 'g', 'G', '%':
			sp.Verb = s[i]
			i++
		}
	}
	for ; i < len(s); i++ {
		switch s[i] {
		case 'S':
			sp.Shorthand = true
		case 'L':
			sp.Latex = true
		default:
			return Spec{}, fmt.Errorf("%w: %q: unexpected %q", ErrBadSpec, s, s[i])
		}
	}
	return sp, nil
}

// Format renders a single value according to spec. Specifiers that only
// make sense for paired values (u, S, L) are rejected.
func Format(v float64, spec string) (string, error) {
	sp, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	if sp.Uncert || sp.Shorthand || sp.Latex {
		return "", fmt.Errorf("%w: %q: option requires an uncertainty", ErrBadSpec, spec)
	}
	var out string
	switch sp.Verb {
	case 'f', 'F':
		out = strconv.FormatFloat(v, 'f', precisionOr(sp.Precision, 6), 64)
	case 'e', 'E':
		out = strconv.FormatFloat(v, sp.Verb, precisionOr(sp.Precision, 6), 64)
	case 'g', 'G':
		out = strconv.FormatFloat(v, sp.Verb, precisionOr(sp.Precision, 6), 64)
	case '%':
		out = strconv.FormatFloat(v*100, 'f', precisionOr(sp.Precision, 6), 64) + "%"
	default:
		if sp.Precision >= 0 {
			out = strconv.FormatFloat(v, 'g', max(sp.Precision, 1), 64)
		} else {
			out = Raw(v)
		}
	}
	return sign(out, v, sp.Sign), nil
}

func precisionOr(p, def int) int {
	if p < 0 {
		return def
	}
	return p
}

func sign(s string, v float64, flag byte) string {
	if v < 0 || (len(s) > 0 && s[0] == '-') {
		return s
	}
	switch flag {
	case '+':
		return "+" + s
	case ' ':
		return " " + s
	}
	return s
}
