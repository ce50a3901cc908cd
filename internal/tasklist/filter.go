package tasklist

import (
	"fmt"
	"time"

	"taskdeck/internal/service"
)

// Filter selects the rendered subset of the task list. Presentation only;
// it never mutates the list.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"

	// FilterOverdue shows tasks whose due date is strictly before now.
	// Tasks without a due date are excluded.
	FilterOverdue Filter = "overdue"

	// FilterUpcoming shows tasks whose due date is at or after now.
	// Tasks without a due date are excluded.
	FilterUpcoming Filter = "upcoming"
)

// ParseFilter validates a filter name.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterOverdue, FilterUpcoming:
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid filter: %s (expected all, overdue or upcoming)", s)
}

// Next cycles all -> overdue -> upcoming -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterOverdue
	case FilterOverdue:
		return FilterUpcoming
	default:
		return FilterAll
	}
}

// Matches reports whether the task belongs to the filtered subset at the
// given instant.
func (f Filter) Matches(t service.Task, now time.Time) bool {
	switch f {
	case FilterOverdue:
		return t.DueDate != nil && t.DueDate.Before(now)
	case FilterUpcoming:
		return t.DueDate != nil && !t.DueDate.Before(now)
	default:
		return true
	}
}

// Apply returns the subset of tasks matching the filter, preserving order.
func (f Filter) Apply(tasks []service.Task, now time.Time) []service.Task {
	if f == FilterAll || f == "" {
		return tasks
	}
	var out []service.Task
	for _, t := range tasks {
		if f.Matches(t, now) {
			out = append(out, t)
		}
	}
	return out
}
