package query

import (
	"fmt"
	"strings"
)

// Filter is a mutually exclusive view restriction
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterToday     Filter = "today"
)

// Sort is the ordering applied after filtering and searching
type Sort string

const (
	SortNewest   Sort = "newest"
	SortDue      Sort = "due"
	SortPriority Sort = "priority"
	SortCategory Sort = "category"
)

var (
	filters = []Filter{FilterAll, FilterPending, FilterCompleted, FilterToday}
	sorts   = []Sort{SortNewest, SortDue, SortPriority, SortCategory}
)

// Options holds the transient view parameters
type Options struct {
	Filter Filter
	Search string
	Sort   Sort
}

// Filters lists the filter options in display order
func Filters() []Filter {
	return append([]Filter(nil), filters...)
}

// Sorts lists the sort options in display order
func Sorts() []Sort {
	return append([]Sort(nil), sorts...)
}

// ParseFilter converts user input to a Filter. Empty input means all.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q. Use: all, pending, completed, or today", s)
}

// ParseSort converts user input to a Sort. Empty input means newest.
func ParseSort(s string) (Sort, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNewest, nil
	}
	for _, o := range sorts {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort %q. Use: newest, due, priority, or category", s)
}

// Next returns the following filter, wrapping around
func (f Filter) Next() Filter {
	for i, x := range filters {
		if x == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Next returns the following sort key, wrapping around
func (o Sort) Next() Sort {
	for i, x := range sorts {
		if x == o {
			return sorts[(i+1)%len(sorts)]
		}
	}
	return SortNewest
}
