package textab

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Default labels of the rows appended by [Table.Summarize].
const (
	DefaultMeanName = "Mean"
	DefaultStdName  = `$\sigma$`
)

// SummaryOptions configures [Table.Summarize].
type SummaryOptions struct {
	// Columns lists the leaf keys to summarize. Empty, or the single entry
	// "all", selects every leaf column except the first.
	Columns []string
	// Style is applied to the computed values. Default: precision 3.
	Style    *Style
	MeanName string
	StdName  string
}

// Summarize appends two rows holding the mean and the population standard
// deviation of the numeric cells of each selected column. The rows are
// labelled in the first leaf column. Text cells are ignored, and a column
// without numeric cells gets placeholders.
func (t *Table) Summarize(opts SummaryOptions) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.keys) == 0 {
		return ErrNoColumns
	}

	index := t.keys[0]
	columns := opts.Columns
	if len(columns) == 0 || len(columns) == 1 && columns[0] == "all" {
		columns = t.keys[1:]
	}
	style := Style{Precision: Prec(3)}
	if opts.Style != nil {
		style = opts.Style.clone()
	}
	meanName, stdName := opts.MeanName, opts.StdName
	if meanName == "" {
		meanName = DefaultMeanName
	}
	if stdName == "" {
		stdName = DefaultStdName
	}

	means := map[string]Cell{index: Literal(meanName)}
	stds := map[string]Cell{index: Literal(stdName)}
	for _, k := range columns {
		col, ok := t.columns[k]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, k)
		}
		if k == index {
			return fmt.Errorf("%w: %q holds the summary labels", ErrInvalidRow, k)
		}
		var data stats.Float64Data
		for _, c := range col {
			if v, ok := c.Value(); ok {
				data = append(data, v)
			}
		}
		mean, err := stats.Mean(data)
		if err != nil {
			t.logger.Debug("nothing to summarize", "column", k, "err", err)
			continue
		}
		std, err := stats.StandardDeviationPopulation(data)
		if err != nil {
			return fmt.Errorf("summarize %q: %w", k, err)
		}
		means[k] = Styled(Literal(mean), style)
		stds[k] = Styled(Literal(std), style)
	}

	if err := t.addRow(Row{Values: means}); err != nil {
		return err
	}
	return t.addRow(Row{Values: stds})
}
