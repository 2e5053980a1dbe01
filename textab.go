package textab

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidShape      = errors.New("invalid value shape")
	ErrInvalidStyle      = errors.New("invalid style")
	ErrInvalidColumnSpec = errors.New("invalid column declaration")
	ErrInvalidRow        = errors.New("invalid row")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNoColumns         = errors.New("columns not set")
	ErrUnsupported       = errors.New("not supported")
	ErrFormat            = errors.New("numeric format failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
	ErrInvalidDefinition = errors.New("invalid table definition")
)

// Format represents an output format for a [Table].
type Format string

const (
	LaTeX    Format = "latex"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
	Text     Format = "text"
)

var formats = []Format{LaTeX, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML, Text}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders the table in format f and writes it to w. Only LaTeX output
// carries cell styling and spans; the other formats export the cell values.
func (t *Table) Write(w io.Writer, f Format) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return ErrNoColumns
	}
	switch f {
	case LaTeX:
		_, err := io.WriteString(w, t.latex())
		return err
	case Markdown:
		return t.writeMarkdown(w)
	case CSV:
		return t.writeCSV(w, ',')
	case TSV:
		return t.writeTSV(w)
	case JSON:
		return t.writeJSON(w)
	case JSONL:
		return t.writeJSONL(w)
	case YAML:
		return t.writeYAML(w)
	case HTML:
		return t.writeHTML(w)
	case Text:
		return t.writeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the table in format f and returns the bytes.
func (t *Table) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
