package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's completion.
type ToggleTaskInput struct {
	TaskID int64 // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task *domain.Task // The toggled task, nil when the ID was unknown
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute flips Completed on the task. Status and DueSoon are left as they
// are; an unknown ID is a no-op and returns a nil task.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return &ToggleTaskOutput{}, nil
	}

	// Stored tasks are handed out by reference, so replace instead of
	// mutating in place.
	updated := *task
	updated.Completed = !updated.Completed
	if err := uc.tasks.Save(&updated); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("toggled #%d: completed=%t", updated.ID, updated.Completed))
	}

	return &ToggleTaskOutput{Task: &updated}, nil
}
