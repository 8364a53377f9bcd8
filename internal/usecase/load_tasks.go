// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// LoadTasksOutput contains the annotated source list.
type LoadTasksOutput struct {
	Tasks []*domain.Task // Remote order, each with a position-derived display date
}

// LoadTasks is the use case for fetching the full task collection.
type LoadTasks struct {
	tasks     domain.TaskService
	logger    domain.Logger
	dateMonth string
}

// NewLoadTasks creates a new LoadTasks use case.
// dateMonth is the YYYY-MM prefix of the synthetic display dates.
func NewLoadTasks(tasks domain.TaskService, logger domain.Logger, dateMonth string) *LoadTasks {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if dateMonth == "" {
		dateMonth = domain.DefaultDateMonth
	}
	return &LoadTasks{
		tasks:     tasks,
		logger:    logger,
		dateMonth: dateMonth,
	}
}

// Execute requests the collection exactly once and annotates every record.
// There is no retry; the caller decides how a failure is shown.
func (uc *LoadTasks) Execute(ctx context.Context) (*LoadTasksOutput, error) {
	records, err := uc.tasks.List(ctx)
	if err != nil {
		uc.logger.Error("load", err.Error())
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks := domain.AnnotateDisplayDates(records, uc.dateMonth)
	uc.logger.Info("load", fmt.Sprintf("loaded %d tasks", len(tasks)))
	return &LoadTasksOutput{Tasks: tasks}, nil
}
