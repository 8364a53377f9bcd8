// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Task represents one to-do record shown on the board.
// Fields are ordered to minimize memory padding.
type Task struct {
	Title       string `json:"title" yaml:"title"`         // Title (required)
	DisplayDate string `json:"date" yaml:"date"`           // Synthetic display date (not a timestamp)
	ID          int    `json:"id" yaml:"id"`               // Assigned by the remote service
	OwnerID     int    `json:"userId" yaml:"userId"`       // Owner assigned by the remote service
	Completed   bool   `json:"completed" yaml:"completed"` // Completion flag
}

// StatusLabel returns the human-readable completion label.
func (t *Task) StatusLabel() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// NewTask holds the fields sent to the remote service when creating a task.
type NewTask struct {
	Title     string `json:"title"`
	OwnerID   int    `json:"userId"`
	Completed bool   `json:"completed"`
}

// Display date settings.
const (
	DefaultDateMonth = "2024-07"    // Month used for position-derived display dates
	DateCycle        = 30           // Display days repeat every DateCycle positions
	DateLayout       = "2006-01-02" // Layout of display dates and of the date filter
	MonthLayout      = "2006-01"    // Layout of DefaultDateMonth
)

// MockDisplayDate returns the display date for the task at index in a loaded list.
// Days cycle through 1..DateCycle; the value is mock data, not a creation time.
func MockDisplayDate(month string, index int) string {
	if index < 0 {
		index = -index
	}
	return fmt.Sprintf("%s-%02d", month, index%DateCycle+1)
}

// TodayDisplayDate returns the display date given to a task created now.
func TodayDisplayDate(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// AnnotateDisplayDates returns copies of tasks with DisplayDate derived from their position.
func AnnotateDisplayDates(tasks []Task, month string) []*Task {
	result := make([]*Task, 0, len(tasks))
	for i := range tasks {
		task := tasks[i]
		task.DisplayDate = MockDisplayDate(month, i)
		result = append(result, &task)
	}
	return result
}
