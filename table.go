package textab

import (
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/charmbracelet/log"
)

// Table assembles cells under a multi-level column header and renders them
// as a LaTeX table. A Table is safe for concurrent use; every method holds
// the table lock for its whole duration.
type Table struct {
	mu sync.Mutex

	caption     string
	label       string
	centering   bool
	houseStyle  bool
	location    string
	size        string
	vspace      string
	hspace      string
	align       string
	clineStart  int
	headerStyle Style
	border      BorderStyle
	color       bool
	logger      *log.Logger

	titles  []Title
	keys    []string
	columns map[string][]Cell
}

// Option configures a [Table] at construction.
type Option func(*Table)

// WithCaption sets the table caption.
func WithCaption(s string) Option { return func(t *Table) { t.caption = s } }

// WithLabel sets the LaTeX label.
func WithLabel(s string) Option { return func(t *Table) { t.label = s } }

// WithCentering toggles the \centering directive. Default: true.
func WithCentering(on bool) Option { return func(t *Table) { t.centering = on } }

// WithHouseStyle toggles the house style: no vertical rules, no rules between
// body rows, doubled rules at the top and bottom. Default: true.
func WithHouseStyle(on bool) Option { return func(t *Table) { t.houseStyle = on } }

// WithLocation sets the float placement specifier. Default: "H".
func WithLocation(s string) Option { return func(t *Table) { t.location = s } }

// WithSize sets a size directive such as "small", emitted before the
// caption. Default: none.
func WithSize(s string) Option { return func(t *Table) { t.size = s } }

// WithSpacing sets the \hspace* and \vspace* lengths. Default: "0mm".
func WithSpacing(hspace, vspace string) Option {
	return func(t *Table) { t.hspace, t.vspace = hspace, vspace }
}

// WithAlign sets the column alignment letter. Default: "l".
func WithAlign(s string) Option { return func(t *Table) { t.align = s } }

// WithClineStart sets the first column of the partial rule drawn below rows
// spanned by a multirow cell. Default: 2.
func WithClineStart(col int) Option { return func(t *Table) { t.clineStart = col } }

// WithHeaderStyle sets a style merged into every title and sub-title cell.
func WithHeaderStyle(s Style) Option { return func(t *Table) { t.headerStyle = s.clone() } }

// WithBorder sets the border style of the [Text] format.
// Default: [BorderRounded].
func WithBorder(b BorderStyle) Option { return func(t *Table) { t.border = b } }

// WithColor enables ANSI styling of cells in the [Text] format.
func WithColor(on bool) Option { return func(t *Table) { t.color = on } }

// WithLogger sets the logger that reports formatting fallbacks and row
// activity. Default: a logger that discards everything.
func WithLogger(l *log.Logger) Option { return func(t *Table) { t.logger = l } }

// New returns an empty table without columns.
func New(opts ...Option) *Table {
	t := &Table{
		centering:  true,
		houseStyle: true,
		location:   "H",
		vspace:     "0mm",
		hspace:     "0mm",
		align:      "l",
		clineStart: 2,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t
}

// SetColumns parses column declarations (see [ParseColumns]) and resets the
// grid to an empty one keyed by the leaf keys. Rows added before are
// discarded.
func (t *Table) SetColumns(decls ...string) error {
	titles, keys, err := ParseColumns(decls...)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.titles = titles
	t.keys = keys
	t.columns = make(map[string][]Cell, len(keys))
	for _, k := range keys {
		t.columns[k] = nil
	}
	t.logger.Debug("columns set", "titles", len(titles), "leaves", len(keys))
	return nil
}

// Columns returns the leaf column keys in order.
func (t *Table) Columns() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Titles returns the top-level column titles.
func (t *Table) Titles() []Title {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Title, len(t.titles))
	for i, ti := range t.titles {
		ti.Subs = append([]SubTitle(nil), ti.Subs...)
		out[i] = ti
	}
	return out
}

// Column returns a copy of the cells of the leaf column key.
func (t *Table) Column(key string) ([]Cell, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	col, ok := t.columns[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	out := make([]Cell, len(col))
	for i, c := range col {
		out[i] = c.WithStyle(c.style)
	}
	return out, nil
}

// NRows returns the number of body rows.
func (t *Table) NRows() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nrows()
}

func (t *Table) nrows() int {
	if len(t.keys) == 0 {
		return 0
	}
	return len(t.columns[t.keys[0]])
}

// SetCaption replaces the caption.
func (t *Table) SetCaption(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.caption = s
}

// Caption returns the raw caption text.
func (t *Table) Caption() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.caption
}

// RenderedCaption returns the caption as a \caption command, or "" when no
// caption is set.
func (t *Table) RenderedCaption() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return wrapNonEmpty("caption", t.caption)
}

// SetLabel replaces the LaTeX label.
func (t *Table) SetLabel(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.label = s
}

// Label returns the raw label.
func (t *Table) Label() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.label
}

// RenderedLabel returns the label as a \label command, or "" when no label
// is set.
func (t *Table) RenderedLabel() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return wrapNonEmpty("label", t.label)
}

func wrapNonEmpty(cmd, s string) string {
	if s == "" {
		return ""
	}
	return command(cmd, s)
}

// Configure applies options to an existing table.
func (t *Table) Configure(opts ...Option) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
}

// Row is one row of values keyed by leaf column key.
//
// Style, when set, applies to every cell of the row; options set on a cell
// itself take precedence. Keys without a value receive an empty placeholder
// carrying the row style.
//
// Subrows turns the row into a group: the Anchor cell (default: the first
// leaf column) spans 1+len(Subrows) rows and each subrow is added below the
// row, with the anchor column left to the span. A subrow without its own
// Style inherits the row style.
type Row struct {
	Values  map[string]Cell
	Style   *Style
	Anchor  string
	Subrows []Row
}

// Values converts loosely typed values into cells with [Literal]. Cells are
// kept as they are.
func Values(m map[string]any) map[string]Cell {
	out := make(map[string]Cell, len(m))
	for k, v := range m {
		out[k] = Literal(v)
	}
	return out
}

// AddRow appends r, and its subrows, to the grid. The grid is left untouched
// when an error is returned.
func (t *Table) AddRow(r Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addRow(r)
}

func (t *Table) addRow(r Row) error {
	if len(t.keys) == 0 {
		return ErrNoColumns
	}
	anchor, err := t.checkRow(r)
	if err != nil {
		return err
	}

	var rowStyle Style
	if r.Style != nil {
		rowStyle = r.Style.clone()
	}
	values := maps.Clone(r.Values)
	if len(r.Subrows) > 0 {
		if values == nil {
			values = make(map[string]Cell)
		}
		c, ok := values[anchor]
		if !ok {
			c = Empty()
		}
		values[anchor] = c.WithStyle(c.style.Merge(Style{MultiRow: 1 + len(r.Subrows)}))
	}
	t.appendRow(values, rowStyle, "")

	for _, sub := range r.Subrows {
		style := rowStyle
		if sub.Style != nil {
			style = sub.Style.clone()
		}
		t.appendRow(sub.Values, style, anchor)
	}
	t.logger.Debug("row added", "subrows", len(r.Subrows), "rows", t.nrows())
	return nil
}

// checkRow validates r against the column keys and returns the anchor key of
// a row group.
func (t *Table) checkRow(r Row) (string, error) {
	for k := range r.Values {
		if _, ok := t.columns[k]; !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownColumn, k)
		}
	}
	if len(r.Subrows) == 0 {
		return "", nil
	}
	anchor := r.Anchor
	if anchor == "" {
		anchor = t.keys[0]
	}
	if _, ok := t.columns[anchor]; !ok {
		return "", fmt.Errorf("%w: anchor %q", ErrUnknownColumn, anchor)
	}
	for i, sub := range r.Subrows {
		if len(sub.Subrows) > 0 {
			return "", fmt.Errorf("%w: subrow %d has nested subrows", ErrInvalidRow, i)
		}
		if _, ok := sub.Values[anchor]; ok {
			return "", fmt.Errorf("%w: subrow %d sets spanned column %q", ErrInvalidRow, i, anchor)
		}
		for k := range sub.Values {
			if _, ok := t.columns[k]; !ok {
				return "", fmt.Errorf("%w: subrow %d: %q", ErrUnknownColumn, i, k)
			}
		}
	}
	return anchor, nil
}

// appendRow appends one cell to every column. The spanned column, if any,
// receives an unstyled placeholder.
func (t *Table) appendRow(values map[string]Cell, style Style, spanned string) {
	for _, k := range t.keys {
		var c Cell
		switch v, ok := values[k]; {
		case k == spanned:
			c = Empty()
		case ok:
			c = v.WithStyle(style.Merge(v.style))
		default:
			c = Empty().WithStyle(style)
		}
		t.columns[k] = append(t.columns[k], c)
	}
}
