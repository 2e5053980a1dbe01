package textab

import (
	"encoding/json"
	"io"
)

func (t *Table) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.export())
}

// writeJSONL writes one compact JSON object per body row.
func (t *Table) writeJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, row := range t.exportRows() {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
