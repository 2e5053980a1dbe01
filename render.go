package textab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/textab/internal/numfmt"
)

// Latex renders c as a LaTeX fragment. Numeric formatting failures fall back
// to the unformatted value; use [Cell.Render] to observe them.
func (c Cell) Latex() string {
	s, _ := c.render()
	return s
}

// Render renders c as a LaTeX fragment, returning an error wrapping
// [ErrFormat] if the numeric format options cannot be applied.
func (c Cell) Render() (string, error) {
	s, err := c.render()
	if err != nil {
		return "", err
	}
	return s, nil
}

// render runs the cell pipeline: core value, decorations, span. On a format
// failure it returns both the fallback rendering and the error.
func (c Cell) render() (string, error) {
	core, err := c.core(true)
	if c.kind != kindText {
		core = "$" + core + "$"
	}
	return c.span(c.decorate(core)), err
}

// Plain renders c without markup, for the non-LaTeX export formats. The
// placeholder cell renders as the empty string.
func (c Cell) Plain() string {
	if c.IsEmpty() {
		return ""
	}
	s, _ := c.core(false)
	return s
}

// core formats the value of c. Text is returned unchanged; numbers go through
// the first applicable of Fmt, Precision or the raw value.
func (c Cell) core(latex bool) (string, error) {
	if c.kind == kindText {
		return c.text, nil
	}
	switch {
	case c.style.Fmt != "":
		s, err := c.formatSpec(latex)
		if err != nil {
			return c.fallback(latex), fmt.Errorf("%w: %q: %w", ErrFormat, c.style.Fmt, err)
		}
		return s, nil
	case c.style.Precision != nil:
		return c.formatPrecision(*c.style.Precision, latex), nil
	default:
		return c.fallback(latex), nil
	}
}

func (c Cell) fallback(latex bool) string {
	switch {
	case c.kind != kindPair:
		return c.raw()
	case latex:
		return c.pair().Latex()
	default:
		return c.pair().String()
	}
}

func (c Cell) formatSpec(latex bool) (string, error) {
	spec := c.style.Fmt
	if strings.Contains(spec, "s") {
		prec, err := leadingDigit(spec)
		if err != nil {
			return "", err
		}
		sci := numfmt.Scientific
		if !latex {
			sci = numfmt.ScientificPlain
		}
		out := sci(c.value, prec)
		if c.kind == kindPair {
			out += pm(latex) + sci(c.err, prec)
		}
		return out, nil
	}
	if c.kind == kindPair {
		if latex {
			spec += "L"
		}
		return c.pair().Format(spec)
	}
	out, err := numfmt.Format(c.value, spec)
	if err != nil || !latex {
		return out, err
	}
	return strings.ReplaceAll(out, "%", `\%`), nil
}

func (c Cell) formatPrecision(prec int, latex bool) string {
	if prec < 0 {
		prec = 0
	}
	v := c.raw()
	if !c.integral {
		v = numfmt.Fixed(c.value, prec)
	}
	if c.kind != kindPair {
		return v
	}
	e := numfmt.Fixed(c.err, prec)
	if numfmt.AllZeros(e) {
		if latex {
			e = `\sim 0`
		} else {
			e = "~0"
		}
	}
	return v + pm(latex) + e
}

func pm(latex bool) string {
	if latex {
		return ` \pm `
	}
	return "±"
}

func leadingDigit(spec string) (int, error) {
	if spec == "" || spec[0] < '0' || spec[0] > '9' {
		return 0, fmt.Errorf("scientific specifier %q must start with a digit", spec)
	}
	return int(spec[0] - '0'), nil
}

// decorate layers the style options around text in a fixed order: cell color,
// text size, text style, text color. Prefix commands accumulate in front;
// the text follows them unless a wrapping command already embeds it.
func (c Cell) decorate(text string) string {
	s := c.style
	var prefix strings.Builder
	embedded := false

	if s.CellColor != "" {
		prefix.WriteString(command("cellcolor", s.CellColor))
	}
	if s.TextSize != "" {
		prefix.WriteString(`\` + s.TextSize + " ")
	}
	for _, ts := range textStyleCmds {
		if !strings.Contains(s.TextStyle, ts.code) {
			continue
		}
		if ts.code == "bf" && strings.Contains(text, "$") {
			text = `\boldmath ` + text + ` \unboldmath`
			continue
		}
		text = command(ts.cmd, text)
	}
	if s.TextColor != "" {
		prefix.WriteString(command("textcolor", s.TextColor, text))
		embedded = true
	}

	if embedded {
		return prefix.String()
	}
	return prefix.String() + text
}

// span wraps text in the multirow or multicolumn command requested by the
// style. MultiRow wins when both are set.
func (c Cell) span(text string) string {
	switch {
	case c.style.MultiRow > 0:
		return `\multirow{` + strconv.Itoa(c.style.MultiRow) + `}{*}{` + text + `}`
	case c.style.MultiCol > 0:
		return `\multicolumn{` + strconv.Itoa(c.style.MultiCol) + `}{c}{` + text + `}`
	default:
		return text
	}
}

// command renders \name{arg1}{arg2}...
func command(name string, args ...string) string {
	var sb strings.Builder
	sb.WriteString(`\`)
	sb.WriteString(name)
	for _, a := range args {
		sb.WriteString("{")
		sb.WriteString(a)
		sb.WriteString("}")
	}
	return sb.String()
}
