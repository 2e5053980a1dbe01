package textab

import (
	"fmt"
	"iter"
)

// AddRows adds the rows of seq in order as they arrive. It stops at the
// first row that fails and returns its error; rows added before it are
// kept.
func (t *Table) AddRows(seq iter.Seq[Row]) error {
	n := 0
	var addErr error
	seq(func(r Row) bool {
		if err := t.AddRow(r); err != nil {
			addErr = fmt.Errorf("row %d: %w", n, err)
			return false
		}
		n++
		return true
	})
	return addErr
}

// AddRowsChan adds rows received from ch until it is closed. It is a thin
// wrapper around [Table.AddRows]. On error the remaining rows are not
// drained.
func (t *Table) AddRowsChan(ch <-chan Row) error {
	return t.AddRows(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
