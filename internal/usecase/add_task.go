package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Title string // Sent as typed; blank titles are rejected before any request
}

// AddTaskOutput contains the record to prepend to the source list.
type AddTaskOutput struct {
	Task *domain.Task // Service echo with DisplayDate set to today
}

// AddTask is the use case for creating a task on the remote service.
type AddTask struct {
	tasks   domain.TaskService
	clock   domain.Clock
	logger  domain.Logger
	ownerID int
}

// NewAddTask creates a new AddTask use case. ownerID is sent as userId.
func NewAddTask(tasks domain.TaskService, clock domain.Clock, logger domain.Logger, ownerID int) *AddTask {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &AddTask{
		tasks:   tasks,
		clock:   clock,
		logger:  logger,
		ownerID: ownerID,
	}
}

// Execute posts the task and synthesizes the display record.
// Failures are written to the diagnostic log before being returned.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	created, err := uc.tasks.Create(ctx, domain.NewTask{
		OwnerID:   uc.ownerID,
		Title:     in.Title,
		Completed: false,
	})
	if err != nil {
		uc.logger.Error("add", fmt.Sprintf("error adding task %q: %v", in.Title, err))
		return nil, fmt.Errorf("add task: %w", err)
	}

	task := *created
	task.DisplayDate = domain.TodayDisplayDate(uc.clock.Now())
	uc.logger.Info("add", fmt.Sprintf("created: id=%d %q", task.ID, task.Title))

	return &AddTaskOutput{Task: &task}, nil
}
