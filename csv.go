package textab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func (t *Table) writeCSV(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(t.leafLabels()); err != nil {
		return err
	}
	for _, row := range t.plainRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTSV writes tab-separated values without quoting. Tabs and newlines
// inside cells are replaced by spaces.
func (t *Table) writeTSV(w io.Writer) error {
	clean := strings.NewReplacer("\t", " ", "\n", " ")
	write := func(cells []string) error {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = clean.Replace(c)
		}
		_, err := fmt.Fprintln(w, strings.Join(out, "\t"))
		return err
	}
	if err := write(t.leafLabels()); err != nil {
		return err
	}
	for _, row := range t.plainRows() {
		if err := write(row); err != nil {
			return err
		}
	}
	return nil
}
