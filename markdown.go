package textab

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown writes a GitHub-flavored Markdown table. Sub-columns are
// flattened into "Parent / Sub" headers and the caption, if any, is written
// as a paragraph above the table.
func (t *Table) writeMarkdown(w io.Writer) error {
	header := t.leafLabels()
	rows := t.plainRows()
	align := t.alignment()

	// Minimum width 3 leaves room for the alignment markers.
	widths := make([]int, len(header))
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(escapePipes(cell)))
		}
	}

	if t.caption != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.caption); err != nil {
			return err
		}
	}
	if err := writeMarkdownRow(w, header, widths, align); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch align {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, align); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, align Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = escapePipes(cells[i])
		}
		padded[i] = alignCell(cell, width, align)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
