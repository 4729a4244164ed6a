package tui

import (
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task view is recomputed.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Total int
}

func (MsgTasksLoaded) sealed() {}

// MsgStatsLoaded is sent when aggregate statistics are recomputed.
type MsgStatsLoaded struct {
	Stats *usecase.TaskStatsOutput
}

func (MsgStatsLoaded) sealed() {}

// MsgTaskSaved is sent when a task was created or updated via the form.
type MsgTaskSaved struct {
	TaskID int64
}

func (MsgTaskSaved) sealed() {}

// MsgTaskToggled is sent when a task's completion was flipped.
type MsgTaskToggled struct {
	TaskID int64
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task was removed.
type MsgTaskDeleted struct {
	TaskID int64
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
