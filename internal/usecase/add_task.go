// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Draft domain.TaskDraft // Draft describing the task to create
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task from the given draft.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := in.Draft.Validate(); err != nil {
		return nil, err
	}

	id, err := uc.tasks.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	task := domain.NewTask(id, in.Draft, uc.clock.Now())
	if err := uc.tasks.Save(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q", task.ID, task.Title))
	}

	return &AddTaskOutput{Task: task}, nil
}
