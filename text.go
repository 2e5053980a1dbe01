package textab

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the border characters of the [Text] format.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// ParseBorder parses a border style name: rounded, none, ascii, heavy or
// double.
func ParseBorder(s string) (BorderStyle, error) {
	switch strings.ToLower(s) {
	case "", "rounded":
		return BorderRounded, nil
	case "none":
		return BorderNone, nil
	case "ascii":
		return BorderASCII, nil
	case "heavy":
		return BorderHeavy, nil
	case "double":
		return BorderDouble, nil
	default:
		return 0, fmt.Errorf("%w: border %q", ErrUnsupported, s)
	}
}

// Alignment controls column text alignment in the text exports.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// painter styles an already padded cell. Nil means no styling.
type painter func(string) string

// writeText writes a terminal preview of the table. Nested titles take two
// header lines, the caption is centered above the table, and with color
// enabled the cell styles are approximated with ANSI attributes.
func (t *Table) writeText(w io.Writer) error {
	headers := t.textHeaders()
	rows := t.plainRows()
	widths := textWidths(len(t.keys), headers, rows)
	align := t.alignment()

	paint := make([][]painter, len(rows))
	if t.color {
		for i := range rows {
			paint[i] = make([]painter, len(t.keys))
			for j, k := range t.keys {
				paint[i][j] = cellPainter(t.columns[k][i].style)
			}
		}
	}

	if t.border == BorderNone {
		return renderPlainText(w, headers, rows, paint, widths, align)
	}
	bc, ok := borderSets[t.border]
	if !ok {
		return fmt.Errorf("%w: border %d", ErrUnsupported, t.border)
	}
	return renderBorderedText(w, t.caption, headers, rows, paint, widths, align, bc)
}

// textHeaders returns one header line, or two when any title has
// sub-titles. The parent label sits above its first sub-column.
func (t *Table) textHeaders() [][]string {
	top := make([]string, 0, len(t.keys))
	sub := make([]string, 0, len(t.keys))
	nested := false
	for _, ti := range t.titles {
		if len(ti.Subs) == 0 {
			top = append(top, ti.Label)
			sub = append(sub, "")
			continue
		}
		nested = true
		for i, s := range ti.Subs {
			label := ""
			if i == 0 {
				label = ti.Label
			}
			top = append(top, label)
			sub = append(sub, s.Label)
		}
	}
	if !nested {
		return [][]string{top}
	}
	return [][]string{top, sub}
}

func textWidths(numCols int, headers, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range append(append([][]string{}, headers...), rows...) {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

func renderPlainText(w io.Writer, headers, rows [][]string, paint [][]painter, widths []int, align Alignment) error {
	for _, h := range headers {
		if err := writePlainLine(w, h, nil, widths, align); err != nil {
			return err
		}
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writePlainLine(w, row, paint[i], widths, align); err != nil {
			return err
		}
	}
	return nil
}

func writePlainLine(w io.Writer, cells []string, paint []painter, widths []int, align Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = paintCell(alignCell(cells[i], width, align), paint, i)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func renderBorderedText(w io.Writer, title string, headers, rows [][]string, paint [][]painter, widths []int, align Alignment, bc borderChars) error {
	if title != "" {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := innerWidth(widths) - 2
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, alignCell(title, inner, AlignCenter), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	for _, h := range headers {
		if err := drawRow(w, h, nil, widths, align, bc.vertical); err != nil {
			return err
		}
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for i, row := range rows {
		if err := drawRow(w, row, paint[i], widths, align, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// innerWidth returns the width between the outer borders: every cell plus
// one space of padding per side, and one separator between cells.
func innerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, paint []painter, widths []int, align Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(paintCell(alignCell(cells[i], width, align), paint, i))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func paintCell(s string, paint []painter, i int) string {
	if i < len(paint) && paint[i] != nil {
		return paint[i](s)
	}
	return s
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// ansiColors maps base LaTeX color names to the 16 ANSI colors.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// cellPainter approximates a cell style in the terminal: bold and italic
// text styles, and the base color of text_color and cell_color ("Red!10"
// maps to red).
func cellPainter(s Style) painter {
	ls := lipgloss.NewStyle()
	set := false
	if s.Bold() {
		ls = ls.Bold(true)
		set = true
	}
	if s.Italic() {
		ls = ls.Italic(true)
		set = true
	}
	if c, ok := ansiColor(s.TextColor); ok {
		ls = ls.Foreground(c)
		set = true
	}
	if c, ok := ansiColor(s.CellColor); ok {
		ls = ls.Background(c)
		set = true
	}
	if !set {
		return nil
	}
	return func(text string) string { return ls.Render(text) }
}

func ansiColor(name string) (lipgloss.Color, bool) {
	base, _, _ := strings.Cut(name, "!")
	code, ok := ansiColors[strings.ToLower(base)]
	return lipgloss.Color(code), ok
}
