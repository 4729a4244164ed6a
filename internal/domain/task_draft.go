// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TaskDraft is an in-progress, uncommitted copy of task fields held while a
// task is being created or edited. A draft is fully populated when it is
// created; no field is read before its default has been filled.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	DueDate     time.Time
	Title       string
	Description string
	Tags        []string
	ID          int64 // 0 = new task, non-zero = editing an existing task
	Priority    Priority
	Status      Status
}

// NewTaskDraft returns a blank draft with every field defaulted:
// priority medium, status todo, due date today, no tags.
func NewTaskDraft(today time.Time) TaskDraft {
	return TaskDraft{
		Priority: PriorityMedium,
		Status:   StatusTodo,
		DueDate:  DateOnly(today),
	}
}

// DraftOf returns a draft seeded from an existing task. The tag slice is
// copied so draft edits never reach the committed task before submit.
func DraftOf(t *Task) TaskDraft {
	return TaskDraft{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		Tags:        cloneTags(t.Tags),
	}
}

// IsEdit returns true if the draft refers to an existing task.
func (d *TaskDraft) IsEdit() bool {
	return d.ID != 0
}

// AddTag trims the tag and appends it unless it is empty or already present
// (case-sensitive exact match). Returns true if the tag was added.
func (d *TaskDraft) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, existing := range d.Tags {
		if existing == tag {
			return false
		}
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// RemoveTag removes the exact-matching tag, preserving the order of the rest.
// Returns true if a tag was removed.
func (d *TaskDraft) RemoveTag(tag string) bool {
	for i, existing := range d.Tags {
		if existing == tag {
			d.Tags = append(d.Tags[:i], d.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// Validate checks the required-field contract: a draft with a blank title
// cannot be committed.
func (d *TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !d.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
