package model

import "strings"

// Filter selects which todos a view shows. It is never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every mode in tab order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter maps user input to a Filter. Unknown values fall back to all.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Label is the tab caption shown in the interactive list.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "active tasks"
	case FilterCompleted:
		return "complete tasks"
	default:
		return "all tasks"
	}
}
