package textab

import (
	"fmt"
	"math"
	"strings"
)

// Style is the styling configuration of a cell. The zero value applies no
// styling. Styles are plain values: assigning or merging a Style never
// shares state with the source.
type Style struct {
	// Precision is the number of decimals for non-integral numbers when no
	// Fmt is set. Integers are rendered unchanged.
	Precision *int `json:"precision,omitempty" yaml:"precision,omitempty" toml:"precision,omitempty"`
	// Fmt is a numeric format specifier. A specifier containing "s", such as
	// "3s", selects scientific notation with the leading digit as precision.
	// Anything else is passed to the numeric formatter, with the L flag
	// appended for values that carry an uncertainty. The formatter accepts
	// "[sign][.N][u][verb][S|L]" with sign one of "+", "-", " " and verb one
	// of f F e E g G %; width, grouping, "#", "0" and "d" are rejected.
	Fmt       string `json:"fmt,omitempty" yaml:"fmt,omitempty" toml:"fmt,omitempty"`
	CellColor string `json:"cell_color,omitempty" yaml:"cell_color,omitempty" toml:"cell_color,omitempty"`
	TextSize  string `json:"text_size,omitempty" yaml:"text_size,omitempty" toml:"text_size,omitempty"`
	// TextStyle holds any of the codes "bf", "it" and "tt".
	TextStyle string `json:"text_style,omitempty" yaml:"text_style,omitempty" toml:"text_style,omitempty"`
	TextColor string `json:"text_color,omitempty" yaml:"text_color,omitempty" toml:"text_color,omitempty"`
	// MultiRow spans the cell over that many rows. It takes precedence over
	// MultiCol.
	MultiRow int `json:"multirow,omitempty" yaml:"multirow,omitempty" toml:"multirow,omitempty"`
	MultiCol int `json:"multicol,omitempty" yaml:"multicol,omitempty" toml:"multicol,omitempty"`
}

// Highlight is the style applied by [Table.Highlight] when none is given.
var Highlight = Style{CellColor: "Red!10"}

// Prec returns a pointer to p, for use as [Style.Precision].
func Prec(p int) *int { return &p }

// IsZero reports whether s sets no option.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns a copy of s with every option set in o taking precedence.
func (s Style) Merge(o Style) Style {
	out := s.clone()
	if o.Precision != nil {
		out.Precision = Prec(*o.Precision)
	}
	if o.Fmt != "" {
		out.Fmt = o.Fmt
	}
	if o.CellColor != "" {
		out.CellColor = o.CellColor
	}
	if o.TextSize != "" {
		out.TextSize = o.TextSize
	}
	if o.TextStyle != "" {
		out.TextStyle = o.TextStyle
	}
	if o.TextColor != "" {
		out.TextColor = o.TextColor
	}
	if o.MultiRow != 0 {
		out.MultiRow = o.MultiRow
	}
	if o.MultiCol != 0 {
		out.MultiCol = o.MultiCol
	}
	return out
}

func (s Style) clone() Style {
	if s.Precision != nil {
		s.Precision = Prec(*s.Precision)
	}
	return s
}

var textStyleCmds = []struct{ code, cmd string }{
	{"bf", "textbf"},
	{"it", "textit"},
	{"tt", "texttt"},
}

// Bold reports whether the text style includes bold.
func (s Style) Bold() bool { return strings.Contains(s.TextStyle, "bf") }

// Italic reports whether the text style includes italic.
func (s Style) Italic() bool { return strings.Contains(s.TextStyle, "it") }

// StyleFromMap decodes a loosely typed style, as produced by YAML, TOML or
// JSON decoders, keyed by the option names used in the struct tags.
func StyleFromMap(m map[string]any) (Style, error) {
	var s Style
	for k, v := range m {
		var err error
		switch k {
		case "precision":
			var p int
			p, err = toInt(v)
			s.Precision = Prec(p)
		case "fmt":
			s.Fmt, err = toString(v)
		case "cell_color":
			s.CellColor, err = toString(v)
		case "text_size":
			s.TextSize, err = toString(v)
		case "text_style":
			s.TextStyle, err = toString(v)
		case "text_color":
			s.TextColor, err = toString(v)
		case "multirow":
			s.MultiRow, err = toInt(v)
		case "multicol":
			s.MultiCol, err = toInt(v)
		default:
			return Style{}, fmt.Errorf("%w: unknown option %q", ErrInvalidStyle, k)
		}
		if err != nil {
			return Style{}, fmt.Errorf("%w: option %q: %v", ErrInvalidStyle, k, err)
		}
	}
	return s, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}
