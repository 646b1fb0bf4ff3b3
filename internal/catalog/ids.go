package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a video or author ID given as text.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return id, nil
}
