package domain

import "strings"

// TaskFilter specifies criteria for narrowing the source list.
// Zero values mean the criterion is not applied.
type TaskFilter struct {
	Search string // Case-insensitive substring of the title
	Date   string // Exact display date
}

// IsZero reports whether the filter matches every task.
func (f TaskFilter) IsZero() bool {
	return f.Search == "" && f.Date == ""
}

// Matches reports whether task satisfies both criteria.
func (f TaskFilter) Matches(task *Task) bool {
	if task == nil {
		return false
	}
	if f.Date != "" && task.DisplayDate != f.Date {
		return false
	}
	return strings.Contains(strings.ToLower(task.Title), strings.ToLower(f.Search))
}

// FilterTasks returns the tasks matching f, preserving order.
// The input slice is never modified.
func FilterTasks(tasks []*Task, f TaskFilter) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}
