package textab

import (
	"fmt"
	"strings"
)

// Column declaration delimiters.
const (
	keySep = ":="
	subSep = "::"
)

// Title is a top-level column title. A title either addresses one leaf
// column itself or groups one level of sub-titles.
type Title struct {
	Label string
	Key   string
	Subs  []SubTitle
}

// SubTitle is a leaf column nested under a [Title].
type SubTitle struct {
	Label string
	Key   string
}

// Leaves returns the number of leaf columns under t.
func (t Title) Leaves() int {
	if len(t.Subs) == 0 {
		return 1
	}
	return len(t.Subs)
}

// ParseColumns parses column declarations into titles and the ordered leaf
// keys. Each declaration is one of
//
//	"Label"                          key is the label
//	"Label:=key"                     custom key
//	"Parent::Sub1:=k1::Sub2:=k2"     sub-columns, each independently keyed
//
// Leaf keys must be non-empty and unique.
func ParseColumns(decls ...string) ([]Title, []string, error) {
	if len(decls) == 0 {
		return nil, nil, fmt.Errorf("%w: no columns declared", ErrInvalidColumnSpec)
	}
	titles := make([]Title, 0, len(decls))
	var keys []string
	seen := make(map[string]bool)
	add := func(key, decl string) error {
		if key == "" {
			return fmt.Errorf("%w: %q: empty key", ErrInvalidColumnSpec, decl)
		}
		if seen[key] {
			return fmt.Errorf("%w: %q: duplicate key %q", ErrInvalidColumnSpec, decl, key)
		}
		seen[key] = true
		keys = append(keys, key)
		return nil
	}

	for _, decl := range decls {
		parts := strings.Split(decl, subSep)
		label, key, err := splitKey(parts[0], decl)
		if err != nil {
			return nil, nil, err
		}
		title := Title{Label: label, Key: key}
		if len(parts) == 1 {
			if err := add(key, decl); err != nil {
				return nil, nil, err
			}
			titles = append(titles, title)
			continue
		}
		for _, p := range parts[1:] {
			subLabel, subKey, err := splitKey(p, decl)
			if err != nil {
				return nil, nil, err
			}
			if err := add(subKey, decl); err != nil {
				return nil, nil, err
			}
			title.Subs = append(title.Subs, SubTitle{Label: subLabel, Key: subKey})
		}
		titles = append(titles, title)
	}
	return titles, keys, nil
}

func splitKey(word, decl string) (string, string, error) {
	label, key, ok := strings.Cut(word, keySep)
	if !ok {
		return word, word, nil
	}
	if strings.Contains(key, keySep) {
		return "", "", fmt.Errorf("%w: %q: more than one %q", ErrInvalidColumnSpec, decl, keySep)
	}
	return label, key, nil
}
