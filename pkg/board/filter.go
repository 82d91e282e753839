package board

import (
	"fmt"
	"strings"
)

// Filter selects which tasks the board shows.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterOpen Filter = "open"
	FilterDone Filter = "done"
)

// Filters lists the valid filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterOpen, FilterDone}
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterOpen, FilterDone:
		return true
	}
	return false
}

// Match reports whether t is shown under f. Unknown filters match everything.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterOpen:
		return !t.Done
	case FilterDone:
		return t.Done
	default:
		return true
	}
}

func (f Filter) String() string {
	return string(f)
}

// ParseFilter parses s case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("board: unknown filter %q, want one of all, open, done", s)
	}
	return f, nil
}
