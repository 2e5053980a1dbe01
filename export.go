package textab

import (
	"strconv"
	"strings"
)

// leafLabels returns one header label per leaf column. Sub-columns are
// labelled "Parent / Sub".
func (t *Table) leafLabels() []string {
	labels := make([]string, 0, len(t.keys))
	for _, ti := range t.titles {
		if len(ti.Subs) == 0 {
			labels = append(labels, ti.Label)
			continue
		}
		for _, s := range ti.Subs {
			parts := make([]string, 0, 2)
			for _, p := range []string{ti.Label, s.Label} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			labels = append(labels, strings.Join(parts, " / "))
		}
	}
	return labels
}

// plainRows returns the body as markup-free text, row by row.
func (t *Table) plainRows() [][]string {
	n := t.nrows()
	rows := make([][]string, n)
	for i := range n {
		row := make([]string, len(t.keys))
		for j, k := range t.keys {
			row[j] = t.columns[k][i].Plain()
		}
		rows[i] = row
	}
	return rows
}

// alignment maps the LaTeX column alignment letter to an [Alignment].
func (t *Table) alignment() Alignment {
	switch t.align {
	case "c":
		return AlignCenter
	case "r":
		return AlignRight
	default:
		return AlignLeft
	}
}

// exportTable is the document written by the JSON and YAML formats.
type exportTable struct {
	Caption string           `json:"caption,omitempty" yaml:"caption,omitempty"`
	Label   string           `json:"label,omitempty" yaml:"label,omitempty"`
	Columns []exportColumn   `json:"columns" yaml:"columns"`
	Rows    []map[string]any `json:"rows" yaml:"rows"`
}

type exportColumn struct {
	Key   string `json:"key" yaml:"key"`
	Title string `json:"title" yaml:"title"`
}

type exportPair struct {
	Value float64 `json:"value" yaml:"value"`
	Error float64 `json:"error" yaml:"error"`
}

func (t *Table) export() exportTable {
	labels := t.leafLabels()
	out := exportTable{
		Caption: t.caption,
		Label:   t.label,
		Columns: make([]exportColumn, len(t.keys)),
		Rows:    t.exportRows(),
	}
	for i, k := range t.keys {
		out.Columns[i] = exportColumn{Key: k, Title: labels[i]}
	}
	return out
}

func (t *Table) exportRows() []map[string]any {
	n := t.nrows()
	rows := make([]map[string]any, n)
	for i := range n {
		row := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			row[k] = cellData(t.columns[k][i])
		}
		rows[i] = row
	}
	return rows
}

// cellData returns the exported value of c: nil for placeholders, a string
// for text, a number, or a value/error pair.
func cellData(c Cell) any {
	switch {
	case c.IsEmpty():
		return nil
	case c.kind == kindText:
		return c.text
	case c.kind == kindPair:
		return exportPair{Value: c.value, Error: c.err}
	case c.integral:
		if n, err := strconv.ParseInt(c.text, 10, 64); err == nil {
			return n
		}
		n, _ := strconv.ParseUint(c.text, 10, 64)
		return n
	default:
		return c.value
	}
}
