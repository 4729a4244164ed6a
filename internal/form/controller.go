// Package form holds the editing state for the task form.
package form

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Sink receives submitted drafts. The TUI and CLI wire it to the add and
// edit use cases.
type Sink interface {
	Add(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error)
}

// Controller owns the form's open/closed state and the draft being edited.
// At most one form is open at a time.
type Controller struct {
	draft *domain.TaskDraft
}

// NewController creates a closed form controller.
func NewController() *Controller {
	return &Controller{}
}

// IsOpen reports whether a draft is being edited.
func (c *Controller) IsOpen() bool {
	return c.draft != nil
}

// Draft returns the draft under edit, or nil when the form is closed.
func (c *Controller) Draft() *domain.TaskDraft {
	return c.draft
}

// OpenForCreate opens the form with a defaulted draft for a new task.
// An already-open form is replaced.
func (c *Controller) OpenForCreate(today time.Time) {
	d := domain.NewTaskDraft(today)
	c.draft = &d
}

// OpenForEdit opens the form pre-filled from an existing task.
func (c *Controller) OpenForEdit(task *domain.Task) {
	d := domain.DraftOf(task)
	c.draft = &d
}

// Cancel closes the form and discards the draft.
func (c *Controller) Cancel() {
	c.draft = nil
}

// Submit validates the draft and routes it to the sink: Update when the
// draft carries an existing task ID, Add otherwise. The form closes only
// on success so a failed submit keeps the user's input.
func (c *Controller) Submit(ctx context.Context, sink Sink) (*domain.Task, error) {
	if c.draft == nil {
		return nil, domain.ErrFormClosed
	}
	if err := c.draft.Validate(); err != nil {
		return nil, err
	}

	var (
		task *domain.Task
		err  error
	)
	if c.draft.IsEdit() {
		task, err = sink.Update(ctx, c.draft.ID, *c.draft)
	} else {
		task, err = sink.Add(ctx, *c.draft)
	}
	if err != nil {
		return nil, err
	}

	c.draft = nil
	return task, nil
}
