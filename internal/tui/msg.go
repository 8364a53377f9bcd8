package tui

import "github.com/runoshun/taskboard/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the initial load completes.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgLoadFailed is sent when the initial load fails.
// The board shows only the error from then on.
type MsgLoadFailed struct {
	Err error
}

func (MsgLoadFailed) sealed() {}

// MsgTaskAdded is sent when the service accepted a new task.
type MsgTaskAdded struct {
	Task *domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgAddFailed is sent when creating a task failed.
// The failure has already been logged; the board is left unchanged.
type MsgAddFailed struct {
	Err error
}

func (MsgAddFailed) sealed() {}
