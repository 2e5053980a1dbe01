// Package textab renders scientific tables as LaTeX.
//
// A [Table] holds a grid of [Cell] values under a one- or two-level column
// header and renders it as a LaTeX table environment. Cells carry a [Style]
// controlling numeric formatting, color, size, font and row or column spans.
//
// # Cells
//
// Use [Literal] for text and plain numbers, [ValueWithError] for a value with
// an uncertainty, and [CellFromValues] for loosely typed input such as a
// decoded YAML list:
//
//	textab.Literal("BDT")                       // BDT
//	textab.Literal(0.9137)                      // $0.9137$
//	textab.ValueWithError(1.234, 0.056)         // $1.234 \pm 0.056$
//	textab.Literal(1.5).WithStyle(textab.Style{Precision: textab.Prec(2)})
//
// Numbers are formatted with, in order of preference, Style.Fmt, then
// Style.Precision, then the unformatted value. A number without Fmt renders
// as its literal value unless Precision is set, in which case non-integral
// values are fixed to that many decimals. Fmt accepts
//
//   - "3s" and similar: scientific notation, m \times 10^{e}, with the leading
//     digit as number of decimals
//   - "[sign][.N][u][verb][S]" with verb one of f, e, E, g, G and %: for values
//     with an uncertainty the decimals follow the uncertainty, "u" counts
//     significant digits of the uncertainty and "S" selects the 1.23(4)
//     shorthand
//
// Width, fill and alignment, digit grouping ("," or "_"), "#", "0" and the
// "d" verb are not supported and fail like any other bad specifier.
//
// Formatting never fails a render: [Cell.Latex] and [Table.Latex] fall back to
// the unformatted value and report the failure to the table logger. Use
// [Cell.Render] and [Table.Render] to get the error instead.
//
// # Columns
//
// [Table.SetColumns] takes one declaration per top-level title:
//
//	t.SetColumns("Model:=m", "Results::Train:=tr::Test:=te")
//
// "Label:=key" names the key rows use for the column; "::" nests sub-titles
// under a parent, rendered as a \multicolumn over its children.
//
// # Rows
//
// [Table.AddRow] appends a [Row]. Missing keys get the "{}" placeholder. A
// row with Subrows forms a group whose anchor cell spans every row of the
// group:
//
//	t.AddRow(textab.Row{
//		Values:  textab.Values(map[string]any{"m": "BDT", "tr": 0.91}),
//		Subrows: []textab.Row{{Values: textab.Values(map[string]any{"tr": 0.93})}},
//	})
//
// [Table.AddRows] and [Table.AddRowsChan] stream rows from an iterator or a
// channel.
//
// # Highlight and Summarize
//
// [Table.Highlight] merges a style into the cell selected by [Max] or [Min]
// in every data column. [Table.Summarize] appends a mean row and a standard
// deviation row over the numeric cells of the selected columns.
//
// # Output
//
// [Table.Latex] returns the table environment, [Table.Save] writes it to a
// file and [Table.Document] wraps it in a compilable document using a Go
// [text/template]. [Table.Write] and [Table.Marshal] export the values in the
// other [Format]s:
//
//	t.Write(os.Stdout, textab.Markdown)
//
// # Definitions
//
// [LoadDefinition] reads a whole table, including highlight and summary
// passes, from a YAML or TOML file; [Definition.Build] turns it into a table.
//
// # Errors
//
// All errors wrap one of the package sentinels, such as [ErrInvalidShape],
// [ErrInvalidColumnSpec], [ErrUnknownColumn] or [ErrFormat], for use with
// [errors.Is].
package textab
