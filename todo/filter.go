package todo

import (
	"strings"

	"github.com/hypertodo/hypertodo/db"
)

// Filter selects the subset of items a list view displays. It is a
// view concern only and never affects what the store holds.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a query-param value to a Filter. Unknown or empty
// values fall back to FilterAll.
func ParseFilter(s string) Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return FilterActive
	case "completed":
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches reports whether an item belongs to this filter's subset
func (f Filter) Matches(t db.Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the items matching the filter, preserving order
func (f Filter) Apply(items []db.Todo) []db.Todo {
	if f == FilterAll {
		return items
	}
	out := []db.Todo{}
	for _, t := range items {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
