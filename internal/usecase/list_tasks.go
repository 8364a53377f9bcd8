package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// ListTasksInput contains the parameters for listing one page of tasks.
type ListTasksInput struct {
	Filter   domain.TaskFilter // Search text and date
	Page     int               // Zero-based page index, not validated
	PageSize int               // Zero uses domain.PageSize
}

// ListTasksOutput contains one page of the filtered sequence.
type ListTasksOutput struct {
	Tasks     []*domain.Task // Tasks on the requested page
	Total     int            // Size of the source list
	Filtered  int            // Size of the filtered sequence
	Page      int            // Requested page index
	PageCount int            // ceil(Filtered / PageSize)
}

// ListTasks loads the collection once and returns one page of the filtered view.
type ListTasks struct {
	load *LoadTasks
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(load *LoadTasks) *ListTasks {
	return &ListTasks{load: load}
}

// Execute loads, filters and paginates.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	loaded, err := uc.load.Execute(ctx)
	if err != nil {
		return nil, err
	}

	size := in.PageSize
	if size <= 0 {
		size = domain.PageSize
	}
	filtered := domain.FilterTasks(loaded.Tasks, in.Filter)

	return &ListTasksOutput{
		Tasks:     domain.PageSlice(filtered, in.Page, size),
		Total:     len(loaded.Tasks),
		Filtered:  len(filtered),
		Page:      in.Page,
		PageCount: domain.PageCount(len(filtered), size),
	}, nil
}
