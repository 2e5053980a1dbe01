package textab

import (
	"io"

	"gopkg.in/yaml.v3"
)

func (t *Table) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.export()); err != nil {
		return err
	}
	return enc.Close()
}
