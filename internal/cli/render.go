package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/textab"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format     string // output format name
	output     string // output file; stdout when empty
	standalone bool   // wrap LaTeX output in a full document
	template   string // document template file, implies standalone
	border     string // border style of the text format
	color      bool   // ANSI styling of the text format
	appendOut  bool   // append to the output file instead of truncating it
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: string(textab.LaTeX),
		border: "rounded",
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table definition (.yaml, .yml or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format (see `textab formats`)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "wrap LaTeX output in a compilable document")
	cmd.Flags().StringVar(&opts.template, "template", "", "document template file (implies --standalone)")
	cmd.Flags().StringVar(&opts.border, "border", opts.border, "text border: rounded, none, ascii, heavy, double")
	cmd.Flags().BoolVar(&opts.color, "color", false, "style text output with ANSI colors")
	cmd.Flags().BoolVar(&opts.appendOut, "append", false, "append to the output file")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, path string, opts renderOpts) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	format, err := textab.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	border, err := textab.ParseBorder(opts.border)
	if err != nil {
		return err
	}
	standalone := opts.standalone || opts.template != ""
	if standalone && format != textab.LaTeX {
		return fmt.Errorf("--standalone requires --format %s", textab.LaTeX)
	}

	prog := newProgress(c.Logger)
	def, err := textab.LoadDefinition(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	c.Logger.Debug("definition loaded", "path", path, "columns", len(def.Columns), "rows", len(def.Rows))

	table, err := def.Build(
		textab.WithLogger(c.Logger),
		textab.WithBorder(border),
		textab.WithColor(opts.color),
	)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}

	out, err := c.renderTable(table, format, standalone, opts.template)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := stdout.Write(out); err != nil {
			return err
		}
	} else if err := writeOutput(opts.output, out, opts.appendOut); err != nil {
		return err
	}
	prog.done("rendered", "format", format, "rows", table.NRows())
	return nil
}

func (c *CLI) renderTable(t *textab.Table, f textab.Format, standalone bool, tmplPath string) ([]byte, error) {
	if !standalone {
		return t.Marshal(f)
	}
	var tmpl string
	if tmplPath != "" {
		data, err := os.ReadFile(tmplPath)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		tmpl = string(data)
	}
	doc, err := t.Document(tmpl)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

func writeOutput(path string, data []byte, appendOut bool) (err error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendOut {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	_, err = f.Write(data)
	return err
}
