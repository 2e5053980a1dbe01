// Package cli implements the textab command-line interface.
//
// The render command reads a table definition in YAML or TOML and writes the
// table in one of the supported formats. All commands support --verbose (-v)
// for debug-level logging on stderr.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "textab"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "textab renders scientific tables as LaTeX",
		Long:         `textab turns table definitions into LaTeX tables with nested column titles, value±uncertainty cells, highlights and summary rows, and exports the same tables as Markdown, CSV, JSON, YAML, HTML or text.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.formatsCommand())

	return root
}
