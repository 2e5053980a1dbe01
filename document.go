package textab

import (
	"fmt"
	"strings"
	"text/template"
)

// DefaultDocument is the template used by [Table.Document] when none is
// given: a standalone article loading the packages the table markup needs.
const DefaultDocument = `\documentclass{article}
\usepackage{multirow}
\usepackage[table]{xcolor}
\usepackage{float}
\begin{document}
{{.Table}}\end{document}
`

// DocumentData is the data a document template is executed against.
type DocumentData struct {
	Table   string // the rendered table environment
	Caption string
	Label   string
}

// Document renders the table into a full document using the text/template
// tmpl, or [DefaultDocument] when tmpl is empty.
func (t *Table) Document(tmpl string) (string, error) {
	if tmpl == "" {
		tmpl = DefaultDocument
	}
	parsed, err := template.New("document").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}

	t.mu.Lock()
	if len(t.keys) == 0 {
		t.mu.Unlock()
		return "", ErrNoColumns
	}
	data := DocumentData{Table: t.latex(), Caption: t.caption, Label: t.label}
	t.mu.Unlock()

	var sb strings.Builder
	if err := parsed.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return sb.String(), nil
}
