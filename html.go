package textab

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// writeHTML writes an HTML table. Unlike the other exports it keeps the
// header structure and the row spans: parent titles get a colspan and
// multirow cells a rowspan.
func (t *Table) writeHTML(w io.Writer) error {
	style := alignStyle(t.alignment())
	var sb strings.Builder
	sb.WriteString("<table>\n")
	if t.caption != "" {
		fmt.Fprintf(&sb, "  <caption>%s</caption>\n", html.EscapeString(t.caption))
	}

	sb.WriteString("  <thead>\n    <tr>\n")
	nested := false
	for _, ti := range t.titles {
		if len(ti.Subs) > 0 {
			nested = true
			fmt.Fprintf(&sb, "      <th colspan=\"%d\"%s>%s</th>\n", len(ti.Subs), style, html.EscapeString(ti.Label))
			continue
		}
		fmt.Fprintf(&sb, "      <th%s>%s</th>\n", style, html.EscapeString(ti.Label))
	}
	sb.WriteString("    </tr>\n")
	if nested {
		sb.WriteString("    <tr>\n")
		for _, ti := range t.titles {
			if len(ti.Subs) == 0 {
				fmt.Fprintf(&sb, "      <th%s></th>\n", style)
				continue
			}
			for _, s := range ti.Subs {
				fmt.Fprintf(&sb, "      <th%s>%s</th>\n", style, html.EscapeString(s.Label))
			}
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </thead>\n")

	sb.WriteString("  <tbody>\n")
	covered := make([]int, len(t.keys))
	for i := range t.nrows() {
		sb.WriteString("    <tr>\n")
		for j, k := range t.keys {
			if covered[j] > 0 {
				covered[j]--
				continue
			}
			c := t.columns[k][i]
			span := ""
			if n := c.style.MultiRow; n > 1 {
				span = fmt.Sprintf(" rowspan=\"%d\"", n)
				covered[j] = n - 1
			}
			fmt.Fprintf(&sb, "      <td%s%s>%s</td>\n", span, style, html.EscapeString(c.Plain()))
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n</table>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
