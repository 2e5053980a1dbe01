package textab

import (
	"cmp"
	"fmt"
	"strings"
)

// Axis selects the direction of [Table.Highlight].
type Axis int

// AxisColumn has the integer value 1 so that 1 can be used as an alias.
const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "row"
	case AxisColumn:
		return "column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "row"/"0" or "column"/"1".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "row", "rows", "0":
		return AxisRow, nil
	case "column", "columns", "col", "1":
		return AxisColumn, nil
	default:
		return 0, fmt.Errorf("%w: axis %q", ErrUnsupported, s)
	}
}

// Selector picks one cell out of a column and returns its index, or -1 when
// no cell qualifies.
type Selector func(cells []Cell) int

// Max selects the largest cell. Numeric cells are compared by value; a
// column without numbers is compared by text. Placeholders are skipped and
// ties go to the later row.
func Max(cells []Cell) int { return extreme(cells, 1) }

// Min selects the smallest cell, like [Max]. Ties go to the earlier row.
func Min(cells []Cell) int { return extreme(cells, -1) }

// ParseSelector parses "max" (or "") and "min".
func ParseSelector(s string) (Selector, error) {
	switch strings.ToLower(s) {
	case "", "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return nil, fmt.Errorf("%w: selector %q", ErrUnsupported, s)
	}
}

func extreme(cells []Cell, dir int) int {
	numeric := false
	for _, c := range cells {
		if c.IsNumeric() {
			numeric = true
			break
		}
	}
	best := -1
	for i, c := range cells {
		if c.IsEmpty() || c.IsNumeric() != numeric {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		d := compareCells(c, cells[best]) * dir
		if d > 0 || d == 0 && dir > 0 {
			best = i
		}
	}
	return best
}

func compareCells(a, b Cell) int {
	if a.IsNumeric() {
		return cmp.Compare(a.value, b.value)
	}
	return strings.Compare(a.text, b.text)
}

// Highlight merges style (default [Highlight]) into the cell chosen by sel
// (default [Max]) in every leaf column except the first. Only [AxisColumn]
// is supported; [AxisRow] returns an error wrapping [ErrUnsupported].
func (t *Table) Highlight(axis Axis, style *Style, sel Selector) error {
	if axis != AxisColumn {
		return fmt.Errorf("%w: highlight along %s axis", ErrUnsupported, axis)
	}
	s := Highlight
	if style != nil {
		s = style.clone()
	}
	if sel == nil {
		sel = Max
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return ErrNoColumns
	}
	for _, k := range t.keys[1:] {
		col := t.columns[k]
		i := sel(col)
		if i < 0 || i >= len(col) {
			continue
		}
		col[i] = col[i].WithStyle(col[i].style.Merge(s))
		t.logger.Debug("highlighted", "column", k, "row", i)
	}
	return nil
}
