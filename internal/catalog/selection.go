package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Selection is the value of a picker: either one ID or a set of IDs.
// The zero value selects nothing.
type Selection struct {
	multiple bool
	values   []int
}

// Single selects exactly one ID.
func Single(id int) Selection {
	return Selection{values: []int{id}}
}

// Multiple selects any number of IDs.
func Multiple(ids ...int) Selection {
	return Selection{multiple: true, values: slices.Clone(ids)}
}

// IsMultiple reports whether the selection came from a multi-value picker.
func (s Selection) IsMultiple() bool {
	return s.multiple
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.values) == 0
}

// Value returns the selected ID of a single selection, or the first ID of a
// multiple one.
func (s Selection) Value() (int, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[0], true
}

// Values returns every selected ID. A single selection yields one element.
func (s Selection) Values() []int {
	return slices.Clone(s.values)
}

// ParseSelection reads IDs from raw picker values. Each value may itself hold
// comma separated IDs. A single picker rejects more than one ID.
func ParseSelection(raw []string, multiple bool) (Selection, error) {
	var ids []int
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := ParseID(part)
			if err != nil {
				return Selection{}, err
			}
			ids = append(ids, id)
		}
	}

	if multiple {
		return Multiple(ids...), nil
	}
	switch len(ids) {
	case 0:
		return Selection{}, nil
	case 1:
		return Single(ids[0]), nil
	}
	return Selection{}, fmt.Errorf("expected a single value, got %d", len(ids))
}
