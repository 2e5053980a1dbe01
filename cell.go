package textab

import (
	"fmt"
	"strconv"

	"github.com/bjaus/textab/internal/numfmt"
)

// placeholder is the LaTeX text of an empty cell.
const placeholder = "{}"

// Latexer is implemented by values that render themselves as LaTeX. A
// Latexer passed to [Literal] is emitted verbatim, like a string.
type Latexer interface {
	Latex() string
}

type cellKind uint8

const (
	kindText cellKind = iota
	kindNumber
	kindPair
)

// Cell is one logical table value: a text literal, a number, or a number with
// an uncertainty. What a cell holds is fixed at construction; only its
// [Style] changes.
type Cell struct {
	kind     cellKind
	text     string // literal text, or the exact digits of an integer
	value    float64
	integral bool
	err      float64
	style    Style
}

// Literal returns a cell holding v. Strings and [Latexer] values are kept as
// text, integer and floating point kinds become numbers, and anything else is
// converted to text with fmt.Sprint.
func Literal(v any) Cell {
	switch x := v.(type) {
	case Cell:
		return x.WithStyle(x.style)
	case string:
		return Cell{kind: kindText, text: x}
	case Latexer:
		return Cell{kind: kindText, text: x.Latex()}
	case int:
		return integer(float64(x), strconv.FormatInt(int64(x), 10))
	case int8:
		return integer(float64(x), strconv.FormatInt(int64(x), 10))
	case int16:
		return integer(float64(x), strconv.FormatInt(int64(x), 10))
	case int32:
		return integer(float64(x), strconv.FormatInt(int64(x), 10))
	case int64:
		return integer(float64(x), strconv.FormatInt(x, 10))
	case uint:
		return integer(float64(x), strconv.FormatUint(uint64(x), 10))
	case uint8:
		return integer(float64(x), strconv.FormatUint(uint64(x), 10))
	case uint16:
		return integer(float64(x), strconv.FormatUint(uint64(x), 10))
	case uint32:
		return integer(float64(x), strconv.FormatUint(uint64(x), 10))
	case uint64:
		return integer(float64(x), strconv.FormatUint(x, 10))
	case float32:
		return Cell{kind: kindNumber, value: float64(x)}
	case float64:
		return Cell{kind: kindNumber, value: x}
	default:
		return Cell{kind: kindText, text: fmt.Sprint(v)}
	}
}

func integer(v float64, digits string) Cell {
	return Cell{kind: kindNumber, text: digits, value: v, integral: true}
}

// ValueWithError returns a cell holding v with uncertainty e.
func ValueWithError(v, e float64) Cell {
	return Cell{kind: kindPair, value: v, err: e}
}

// Styled returns a copy of c carrying style s.
func Styled(c Cell, s Style) Cell {
	return c.WithStyle(s)
}

// Empty returns the placeholder cell used for missing values.
func Empty() Cell {
	return Cell{kind: kindText, text: placeholder}
}

// WithStyle returns a copy of c carrying style s.
func (c Cell) WithStyle(s Style) Cell {
	c.style = s.clone()
	return c
}

// Style returns a copy of the cell's style.
func (c Cell) Style() Style { return c.style.clone() }

// IsEmpty reports whether c is the placeholder cell.
func (c Cell) IsEmpty() bool { return c.kind == kindText && c.text == placeholder }

// IsNumeric reports whether c holds a number, with or without uncertainty.
func (c Cell) IsNumeric() bool { return c.kind != kindText }

// Value returns the numeric value of c.
func (c Cell) Value() (float64, bool) {
	if c.kind == kindText {
		return 0, false
	}
	return c.value, true
}

// Uncertainty returns the uncertainty of c.
func (c Cell) Uncertainty() (float64, bool) {
	if c.kind != kindPair {
		return 0, false
	}
	return c.err, true
}

// Text returns the literal text of c: the string for text cells and the
// unformatted number otherwise.
func (c Cell) Text() string {
	switch c.kind {
	case kindText:
		return c.text
	case kindPair:
		return c.pair().String()
	default:
		return c.raw()
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string { return c.Text() }

func (c Cell) raw() string {
	if c.integral {
		return c.text
	}
	return numfmt.Raw(c.value)
}

func (c Cell) pair() numfmt.Pair {
	return numfmt.Pair{Value: c.value, Err: c.err}
}

// CellFromValues builds a cell from loosely typed input such as a decoded
// YAML or TOML list. Accepted shapes are [v], [v, e], [v, style] and
// [v, e, style], where style is a [Style] or a map of options. A nil
// uncertainty is treated as absent.
func CellFromValues(vals ...any) (Cell, error) {
	if len(vals) < 1 || len(vals) > 3 {
		return Cell{}, fmt.Errorf("%w: want 1 to 3 terms, got %d", ErrInvalidShape, len(vals))
	}
	if len(vals) == 2 && isStyle(vals[1]) {
		vals = []any{vals[0], nil, vals[1]}
	}

	var (
		c   Cell
		err error
	)
	if len(vals) >= 2 && vals[1] != nil {
		c, err = pairFromValues(vals[0], vals[1])
		if err != nil {
			return Cell{}, err
		}
	} else {
		c = Literal(vals[0])
	}

	if len(vals) == 3 && vals[2] != nil {
		s, err := toStyle(vals[2])
		if err != nil {
			return Cell{}, err
		}
		c = c.WithStyle(s)
	}
	return c, nil
}

func pairFromValues(v, e any) (Cell, error) {
	value, ok := toFloat(v)
	if !ok {
		return Cell{}, fmt.Errorf("%w: value %v (%T) is not numeric", ErrInvalidShape, v, v)
	}
	uncert, ok := toFloat(e)
	if !ok {
		return Cell{}, fmt.Errorf("%w: uncertainty %v (%T) is not numeric", ErrInvalidShape, e, e)
	}
	return ValueWithError(value, uncert), nil
}

func toFloat(v any) (float64, bool) {
	c := Literal(v)
	if c.kind != kindNumber {
		return 0, false
	}
	return c.value, true
}

func isStyle(v any) bool {
	switch v.(type) {
	case Style, *Style, map[string]any:
		return true
	}
	return false
}

func toStyle(v any) (Style, error) {
	switch s := v.(type) {
	case Style:
		return s, nil
	case *Style:
		if s == nil {
			return Style{}, nil
		}
		return *s, nil
	case map[string]any:
		return StyleFromMap(s)
	default:
		return Style{}, fmt.Errorf("%w: expected style, got %T", ErrInvalidShape, v)
	}
}
