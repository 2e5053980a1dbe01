package textab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Definition describes a whole table in a YAML or TOML file: metadata,
// columns, rows, and the highlight and summary passes applied after the
// rows.
//
// Row values are literals, lists of one to three terms (see
// [CellFromValues]), or maps with the keys "value", "error" and "style".
type Definition struct {
	Caption     string                `yaml:"caption" toml:"caption"`
	Label       string                `yaml:"label" toml:"label"`
	Centering   *bool                 `yaml:"centering" toml:"centering"`
	HouseStyle  *bool                 `yaml:"house_style" toml:"house_style"`
	Location    string                `yaml:"location" toml:"location"`
	Size        string                `yaml:"size" toml:"size"`
	VSpace      string                `yaml:"vspace" toml:"vspace"`
	HSpace      string                `yaml:"hspace" toml:"hspace"`
	Align       string                `yaml:"align" toml:"align"`
	ClineStart  int                   `yaml:"cline_start" toml:"cline_start"`
	HeaderStyle *Style                `yaml:"header_style" toml:"header_style"`
	Columns     []string              `yaml:"columns" toml:"columns"`
	Rows        []RowDefinition       `yaml:"rows" toml:"rows"`
	Highlight   []HighlightDefinition `yaml:"highlight" toml:"highlight"`
	Summarize   *SummaryDefinition    `yaml:"summarize" toml:"summarize"`
}

// RowDefinition is the file form of a [Row].
type RowDefinition struct {
	Values  map[string]any  `yaml:"values" toml:"values"`
	Style   *Style          `yaml:"style" toml:"style"`
	Anchor  string          `yaml:"anchor" toml:"anchor"`
	Subrows []RowDefinition `yaml:"subrows" toml:"subrows"`
}

// HighlightDefinition is the file form of a [Table.Highlight] call.
type HighlightDefinition struct {
	Axis     string `yaml:"axis" toml:"axis"`
	Selector string `yaml:"selector" toml:"selector"`
	Style    *Style `yaml:"style" toml:"style"`
}

// SummaryDefinition is the file form of [SummaryOptions].
type SummaryDefinition struct {
	Columns  []string `yaml:"columns" toml:"columns"`
	Style    *Style   `yaml:"style" toml:"style"`
	MeanName string   `yaml:"mean_name" toml:"mean_name"`
	StdName  string   `yaml:"std_name" toml:"std_name"`
}

// LoadDefinition reads a definition file. The syntax is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q: unknown extension", ErrUnsupportedFormat, path)
	}
}

// DecodeYAML decodes a YAML definition. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return &d, nil
}

// DecodeTOML decodes a TOML definition. Unknown fields are rejected.
func DecodeTOML(data []byte) (*Definition, error) {
	var d Definition
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidDefinition, undecoded[0].String())
	}
	return &d, nil
}

// Options returns the table options described by d.
func (d *Definition) Options() []Option {
	opts := []Option{WithCaption(d.Caption), WithLabel(d.Label)}
	if d.Centering != nil {
		opts = append(opts, WithCentering(*d.Centering))
	}
	if d.HouseStyle != nil {
		opts = append(opts, WithHouseStyle(*d.HouseStyle))
	}
	if d.Location != "" {
		opts = append(opts, WithLocation(d.Location))
	}
	if d.Size != "" {
		opts = append(opts, WithSize(d.Size))
	}
	if d.HSpace != "" || d.VSpace != "" {
		h, v := d.HSpace, d.VSpace
		if h == "" {
			h = "0mm"
		}
		if v == "" {
			v = "0mm"
		}
		opts = append(opts, WithSpacing(h, v))
	}
	if d.Align != "" {
		opts = append(opts, WithAlign(d.Align))
	}
	if d.ClineStart > 0 {
		opts = append(opts, WithClineStart(d.ClineStart))
	}
	if d.HeaderStyle != nil {
		opts = append(opts, WithHeaderStyle(*d.HeaderStyle))
	}
	return opts
}

// Build creates the table described by d. opts are applied after the
// options of the definition and take precedence. Highlights are applied
// before the summary rows are appended, so they only rank data rows.
func (d *Definition) Build(opts ...Option) (*Table, error) {
	t := New(append(d.Options(), opts...)...)
	if err := t.SetColumns(d.Columns...); err != nil {
		return nil, err
	}
	for i, rd := range d.Rows {
		r, err := rd.Row()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err := t.AddRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	for i, h := range d.Highlight {
		axis := AxisColumn
		if h.Axis != "" {
			a, err := ParseAxis(h.Axis)
			if err != nil {
				return nil, fmt.Errorf("highlight %d: %w", i, err)
			}
			axis = a
		}
		sel, err := ParseSelector(h.Selector)
		if err != nil {
			return nil, fmt.Errorf("highlight %d: %w", i, err)
		}
		if err := t.Highlight(axis, h.Style, sel); err != nil {
			return nil, fmt.Errorf("highlight %d: %w", i, err)
		}
	}
	if s := d.Summarize; s != nil {
		err := t.Summarize(SummaryOptions{
			Columns:  s.Columns,
			Style:    s.Style,
			MeanName: s.MeanName,
			StdName:  s.StdName,
		})
		if err != nil {
			return nil, fmt.Errorf("summarize: %w", err)
		}
	}
	return t, nil
}

// Row converts rd into a [Row].
func (rd RowDefinition) Row() (Row, error) {
	r := Row{Style: rd.Style, Anchor: rd.Anchor}
	if len(rd.Values) > 0 {
		r.Values = make(map[string]Cell, len(rd.Values))
	}
	for k, v := range rd.Values {
		c, err := cellFromAny(v)
		if err != nil {
			return Row{}, fmt.Errorf("value %q: %w", k, err)
		}
		r.Values[k] = c
	}
	for i, sub := range rd.Subrows {
		sr, err := sub.Row()
		if err != nil {
			return Row{}, fmt.Errorf("subrow %d: %w", i, err)
		}
		r.Subrows = append(r.Subrows, sr)
	}
	return r, nil
}

func cellFromAny(v any) (Cell, error) {
	switch x := v.(type) {
	case []any:
		return CellFromValues(x...)
	case map[string]any:
		val, ok := x["value"]
		if !ok {
			return Cell{}, fmt.Errorf("%w: map value without \"value\" key", ErrInvalidShape)
		}
		for k := range x {
			if k != "value" && k != "error" && k != "style" {
				return Cell{}, fmt.Errorf("%w: unknown key %q", ErrInvalidShape, k)
			}
		}
		return CellFromValues(val, x["error"], x["style"])
	default:
		return Literal(v), nil
	}
}
