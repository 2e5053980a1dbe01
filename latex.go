package textab

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	hline  = `\hline`
	rowEnd = `\\ `
)

// rule is the markup that follows the line break of a row.
type rule struct {
	count    int // number of \hline
	from, to int // \cline range, when from > 0
}

func (r rule) String() string {
	if r.from > 0 {
		return `\cline{` + strconv.Itoa(r.from) + "-" + strconv.Itoa(r.to) + "}"
	}
	return strings.Repeat(hline, r.count)
}

type latexRow struct {
	cells []string
	rule  rule
}

// Latex renders the table as a LaTeX table environment. Cells whose numeric
// format cannot be applied fall back to the unformatted value and are
// reported to the logger. A table without columns renders as "". Rendering
// does not modify the table; repeated calls return identical output.
func (t *Table) Latex() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return ""
	}
	return t.latex()
}

// Render is the strict form of [Table.Latex]: it fails with [ErrNoColumns]
// before columns are set and with an error wrapping [ErrFormat] for the
// first cell whose numeric format cannot be applied.
func (t *Table) Render() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return "", ErrNoColumns
	}
	for _, k := range t.keys {
		for i, c := range t.columns[k] {
			if _, err := c.render(); err != nil {
				return "", fmt.Errorf("column %q row %d: %w", k, i, err)
			}
		}
	}
	return t.latex(), nil
}

// WriteTo writes the LaTeX rendering of the table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Latex())
	return int64(n), err
}

// Save writes the LaTeX rendering to path, opened with flag. A zero flag
// creates or truncates the file; pass os.O_WRONLY|os.O_CREATE|os.O_APPEND to
// append.
func (t *Table) Save(path string, flag int) error {
	if flag == 0 {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return err
	}
	if _, err := t.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (t *Table) latex() string {
	var sb strings.Builder
	t.writePreamble(&sb)
	if t.houseStyle {
		sb.WriteString(hline + hline + "\n")
	} else {
		sb.WriteString(hline + "\n")
	}
	for _, row := range t.assemble() {
		sb.WriteString(strings.Join(row.cells, " & "))
		sb.WriteString(rowEnd)
		sb.WriteString(row.rule.String())
		sb.WriteString("\n")
	}
	if t.houseStyle {
		sb.WriteString(hline + hline)
	}
	sb.WriteString(`\end{tabular}` + "\n")
	sb.WriteString(`\end{table}` + "\n")
	return sb.String()
}

func (t *Table) writePreamble(sb *strings.Builder) {
	sb.WriteString(`\begin{table}[` + t.location + "]\n")
	if t.centering {
		sb.WriteString(`\centering` + "\n")
	}
	if t.size != "" {
		sb.WriteString(`\` + t.size + "\n")
	}
	for _, line := range []string{wrapNonEmpty("caption", t.caption), wrapNonEmpty("label", t.label)} {
		if line != "" {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString(command("hspace*", t.hspace) + "\n")
	sb.WriteString(command("vspace*", t.vspace) + "\n")
	side := "|"
	if t.houseStyle {
		side = ""
	}
	sb.WriteString(`\begin{tabular}{` + strings.Repeat(side+t.align, len(t.keys)) + side + "}\n")
}

// assemble renders the header and body rows together with the rule that
// follows each of them. Header rows always get a single \hline; body rows get
// one unless the house style is on. A row whose first cell opens a multirow
// span gets a partial \cline instead, so the span is not cut.
func (t *Table) assemble() []latexRow {
	headerRule := rule{count: 1}
	rows := []latexRow{{cells: t.titleRow(), rule: headerRule}}
	if sub := t.subtitleRow(); sub != nil {
		rows = append(rows, latexRow{cells: sub, rule: headerRule})
	}

	bodyRule := rule{count: 1}
	if t.houseStyle {
		bodyRule.count = 0
	}
	first := t.columns[t.keys[0]]
	for i := range first {
		cells := make([]string, len(t.keys))
		for j, k := range t.keys {
			cells[j] = t.cellLatex(t.columns[k][i], k, i)
		}
		r := bodyRule
		if first[i].style.MultiRow > 0 {
			r = rule{from: t.clineStart, to: len(t.keys)}
		}
		rows = append(rows, latexRow{cells: cells, rule: r})
	}
	return rows
}

func (t *Table) titleRow() []string {
	cells := make([]string, 0, len(t.titles))
	for _, ti := range t.titles {
		c := Literal(ti.Label).WithStyle(t.headerStyle)
		if len(ti.Subs) > 0 {
			c = c.WithStyle(c.style.Merge(Style{MultiCol: len(ti.Subs)}))
		}
		cells = append(cells, c.Latex())
	}
	return cells
}

// subtitleRow returns the sub-title cells, one per leaf column, or nil when
// no title has a sub-title.
func (t *Table) subtitleRow() []string {
	var cells []Cell
	for _, ti := range t.titles {
		if len(ti.Subs) == 0 {
			cells = append(cells, Empty())
			continue
		}
		for _, s := range ti.Subs {
			cells = append(cells, Literal(s.Label).WithStyle(t.headerStyle))
		}
	}
	shown := false
	for _, c := range cells {
		if !c.IsEmpty() {
			shown = true
			break
		}
	}
	if !shown {
		return nil
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Latex()
	}
	return out
}

func (t *Table) cellLatex(c Cell, key string, row int) string {
	s, err := c.render()
	if err != nil {
		t.logger.Warn("format fallback", "column", key, "row", row, "err", err)
	}
	return s
}
