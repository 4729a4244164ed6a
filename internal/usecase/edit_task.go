package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// EditTaskInput contains the parameters for updating an existing task.
type EditTaskInput struct {
	Draft  domain.TaskDraft // Draft carrying the updated fields
	TaskID int64            // Task ID to update
}

// EditTaskOutput contains the result of updating a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for updating an existing task.
type EditTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute applies the draft to the stored task. Completed and DueSoon are
// recomputed against the current clock reading.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if err := in.Draft.Validate(); err != nil {
		return nil, err
	}

	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	// Stored tasks are handed out by reference, so replace instead of
	// mutating in place.
	updated := *task
	updated.ApplyDraft(in.Draft, uc.clock.Now())
	if err := uc.tasks.Save(&updated); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("updated #%d: %q", updated.ID, updated.Title))
	}

	return &EditTaskOutput{Task: &updated}, nil
}
