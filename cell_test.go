package textab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textab"
)

type inlineMath string

func (m inlineMath) Latex() string { return "$" + string(m) + "$" }

func TestCellLatex(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell textab.Cell
		want string
	}{
		"text unchanged":      {cell: textab.Literal("BDT"), want: "BDT"},
		"text keeps percent":  {cell: textab.Literal("50%"), want: "50%"},
		"latexer verbatim":    {cell: textab.Literal(inlineMath(`\alpha`)), want: `$\alpha$`},
		"float":               {cell: textab.Literal(0.5), want: "$0.5$"},
		"int":                 {cell: textab.Literal(42), want: "$42$"},
		"int64 exact":         {cell: textab.Literal(int64(9007199254740993)), want: "$9007199254740993$"},
		"uint64 exact":        {cell: textab.Literal(uint64(18446744073709551615)), want: "$18446744073709551615$"},
		"stringer fallback":   {cell: textab.Literal(true), want: "true"},
		"placeholder":         {cell: textab.Empty(), want: "{}"},
		"pair unformatted":    {cell: textab.ValueWithError(1.5, 0.25), want: `$1.5 \pm 0.25$`},
		"pair negative error": {cell: textab.ValueWithError(1.5, -0.25), want: `$1.5 \pm 0.25$`},
		"precision": {
			cell: textab.Literal(1.23456).WithStyle(textab.Style{Precision: textab.Prec(2)}),
			want: "$1.23$",
		},
		"precision keeps integers": {
			cell: textab.Literal(3).WithStyle(textab.Style{Precision: textab.Prec(2)}),
			want: "$3$",
		},
		"precision keeps large integers": {
			cell: textab.Literal(int64(-9007199254740993)).WithStyle(textab.Style{Precision: textab.Prec(2)}),
			want: "$-9007199254740993$",
		},
		"precision pair": {
			cell: textab.ValueWithError(1.234, 0.056).WithStyle(textab.Style{Precision: textab.Prec(2)}),
			want: `$1.23 \pm 0.06$`,
		},
		"precision pair zero error": {
			cell: textab.ValueWithError(1.234, 0.0001).WithStyle(textab.Style{Precision: textab.Prec(2)}),
			want: `$1.23 \pm \sim 0$`,
		},
		"fmt fixed": {
			cell: textab.Literal(3.14159).WithStyle(textab.Style{Fmt: ".3f"}),
			want: "$3.142$",
		},
		"fmt wins over precision": {
			cell: textab.Literal(3.14159).WithStyle(textab.Style{Fmt: ".1f", Precision: textab.Prec(4)}),
			want: "$3.1$",
		},
		"fmt percent escaped": {
			cell: textab.Literal(0.256).WithStyle(textab.Style{Fmt: ".1%"}),
			want: `$25.6\%$`,
		},
		"fmt pair": {
			cell: textab.ValueWithError(1.234, 0.056).WithStyle(textab.Style{Fmt: ".2f"}),
			want: `$1.23 \pm 0.06$`,
		},
		"fmt pair shorthand": {
			cell: textab.ValueWithError(1.234, 0.056).WithStyle(textab.Style{Fmt: ".2fS"}),
			want: "$1.23(6)$",
		},
		"scientific": {
			cell: textab.Literal(0.000123).WithStyle(textab.Style{Fmt: "2s"}),
			want: `$1.23 \times 10^{-4}$`,
		},
		"scientific zero exponent": {
			cell: textab.Literal(2.5).WithStyle(textab.Style{Fmt: "1s"}),
			want: "$2.5$",
		},
		"scientific pair": {
			cell: textab.ValueWithError(12340, 560).WithStyle(textab.Style{Fmt: "1s"}),
			want: `$1.2 \times 10^{4} \pm 5.6 \times 10^{2}$`,
		},
		"cell color": {
			cell: textab.Literal(0.5).WithStyle(textab.Style{CellColor: "Red!10"}),
			want: `\cellcolor{Red!10}$0.5$`,
		},
		"text size": {
			cell: textab.Literal("x").WithStyle(textab.Style{TextSize: "small"}),
			want: `\small x`,
		},
		"bold text": {
			cell: textab.Literal("x").WithStyle(textab.Style{TextStyle: "bf"}),
			want: `\textbf{x}`,
		},
		"bold math": {
			cell: textab.Literal(0.5).WithStyle(textab.Style{TextStyle: "bf"}),
			want: `\boldmath $0.5$ \unboldmath`,
		},
		"bold italic": {
			cell: textab.Literal("x").WithStyle(textab.Style{TextStyle: "bfit"}),
			want: `\textit{\textbf{x}}`,
		},
		"typewriter": {
			cell: textab.Literal("x").WithStyle(textab.Style{TextStyle: "tt"}),
			want: `\texttt{x}`,
		},
		"text color": {
			cell: textab.Literal("x").WithStyle(textab.Style{TextColor: "blue"}),
			want: `\textcolor{blue}{x}`,
		},
		"decoration order": {
			cell: textab.Literal("x").WithStyle(textab.Style{CellColor: "gray", TextSize: "small", TextStyle: "bf", TextColor: "blue"}),
			want: `\cellcolor{gray}\small \textcolor{blue}{\textbf{x}}`,
		},
		"multicolumn": {
			cell: textab.Literal("x").WithStyle(textab.Style{MultiCol: 2}),
			want: `\multicolumn{2}{c}{x}`,
		},
		"multirow": {
			cell: textab.Literal("x").WithStyle(textab.Style{MultiRow: 3}),
			want: `\multirow{3}{*}{x}`,
		},
		"multirow wins": {
			cell: textab.Literal("x").WithStyle(textab.Style{MultiRow: 3, MultiCol: 2}),
			want: `\multirow{3}{*}{x}`,
		},
		"span wraps decoration": {
			cell: textab.Literal(1).WithStyle(textab.Style{MultiRow: 2, CellColor: "Red!10"}),
			want: `\multirow{2}{*}{\cellcolor{Red!10}$1$}`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cell.Latex())
			got, err := tt.cell.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellRenderFormatError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cell     textab.Cell
		fallback string
	}{
		"bad verb":             {cell: textab.Literal(0.5).WithStyle(textab.Style{Fmt: "q"}), fallback: "$0.5$"},
		"scientific no digit":  {cell: textab.Literal(0.5).WithStyle(textab.Style{Fmt: "s"}), fallback: "$0.5$"},
		"pair option on value": {cell: textab.Literal(0.5).WithStyle(textab.Style{Fmt: ".2fS"}), fallback: "$0.5$"},
		"pair bad verb":        {cell: textab.ValueWithError(1, 0.5).WithStyle(textab.Style{Fmt: "q"}), fallback: `$1 \pm 0.5$`},
		"grouping":             {cell: textab.Literal(12345.6).WithStyle(textab.Style{Fmt: ",.1f"}), fallback: "$12345.6$"},
		"width":                {cell: textab.Literal(1.5).WithStyle(textab.Style{Fmt: "8.2f"}), fallback: "$1.5$"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.cell.Render()
			require.ErrorIs(t, err, textab.ErrFormat)
			assert.Equal(t, tt.fallback, tt.cell.Latex())
		})
	}
}

func TestCellPlain(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", textab.Empty().Plain())
	assert.Equal(t, "BDT", textab.Literal("BDT").Plain())
	assert.Equal(t, "0.5", textab.Literal(0.5).Plain())
	assert.Equal(t, "1.5±0.25", textab.ValueWithError(1.5, 0.25).Plain())
	assert.Equal(t, "25.6%", textab.Literal(0.256).WithStyle(textab.Style{Fmt: ".1%"}).Plain())
	assert.Equal(t, "1.23e-04", textab.Literal(0.000123).WithStyle(textab.Style{Fmt: "2s"}).Plain())
}

func TestCellAccessors(t *testing.T) {
	t.Parallel()

	c := textab.ValueWithError(1.5, 0.25)
	v, ok := c.Value()
	assert.True(t, ok)
	assert.InDelta(t, 1.5, v, 1e-12)
	e, ok := c.Uncertainty()
	assert.True(t, ok)
	assert.InDelta(t, 0.25, e, 1e-12)
	assert.True(t, c.IsNumeric())
	assert.Equal(t, "1.5±0.25", c.String())

	txt := textab.Literal("a")
	_, ok = txt.Value()
	assert.False(t, ok)
	_, ok = textab.Literal(2).Uncertainty()
	assert.False(t, ok)
	assert.False(t, txt.IsNumeric())
	assert.False(t, txt.IsEmpty())
	assert.True(t, textab.Empty().IsEmpty())
	assert.Equal(t, "7", textab.Literal(int64(7)).Text())
}

func TestCellWithStyleIsolated(t *testing.T) {
	t.Parallel()
	s := textab.Style{Precision: textab.Prec(2)}
	c := textab.Literal(1.0).WithStyle(s)
	*s.Precision = 5

	got := c.Style()
	require.NotNil(t, got.Precision)
	assert.Equal(t, 2, *got.Precision)

	*got.Precision = 7
	assert.Equal(t, 2, *c.Style().Precision)
}

func TestCellFromValues(t *testing.T) {
	t.Parallel()
	red := textab.Style{CellColor: "Red!10"}
	tests := map[string]struct {
		vals []any
		want string
	}{
		"value":              {vals: []any{0.5}, want: "$0.5$"},
		"text":               {vals: []any{"a"}, want: "a"},
		"value error":        {vals: []any{1.5, 0.25}, want: `$1.5 \pm 0.25$`},
		"integer error":      {vals: []any{3, 1}, want: `$3 \pm 1$`},
		"value style":        {vals: []any{0.5, red}, want: `\cellcolor{Red!10}$0.5$`},
		"value style map":    {vals: []any{0.5, map[string]any{"cell_color": "Red!10"}}, want: `\cellcolor{Red!10}$0.5$`},
		"nil error":          {vals: []any{0.5, nil, red}, want: `\cellcolor{Red!10}$0.5$`},
		"all three":          {vals: []any{1.234, 0.056, map[string]any{"fmt": ".2f"}}, want: `$1.23 \pm 0.06$`},
		"style pointer":      {vals: []any{0.5, &red}, want: `\cellcolor{Red!10}$0.5$`},
		"nil style pointer":  {vals: []any{0.5, 0.1, (*textab.Style)(nil)}, want: `$0.5 \pm 0.1$`},
		"existing cell kept": {vals: []any{textab.Literal("x")}, want: "x"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c, err := textab.CellFromValues(tt.vals...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Latex())
		})
	}
}

func TestCellFromValuesErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		vals []any
		want error
	}{
		"no terms":          {vals: nil, want: textab.ErrInvalidShape},
		"four terms":        {vals: []any{1, 2, 3, 4}, want: textab.ErrInvalidShape},
		"text with error":   {vals: []any{"a", 0.1}, want: textab.ErrInvalidShape},
		"text error":        {vals: []any{1.0, "a"}, want: textab.ErrInvalidShape},
		"style not a style": {vals: []any{1.0, 0.1, "bf"}, want: textab.ErrInvalidShape},
		"unknown option":    {vals: []any{1.0, 0.1, map[string]any{"bogus": 1}}, want: textab.ErrInvalidStyle},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := textab.CellFromValues(tt.vals...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
