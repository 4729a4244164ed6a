// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// DueSoonWindowDays is the number of days ahead (inclusive) for which a task
// counts as due soon.
const DueSoonWindowDays = 3

// Task represents a single to-do item held in memory for the session.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time `json:"created"`               // Creation time
	DueDate     time.Time `json:"dueDate"`               // Calendar date, local midnight
	Title       string    `json:"title"`                 // Title (required)
	Description string    `json:"description,omitempty"` // Description (optional)
	Tags        []string  `json:"tags,omitempty"`        // Unique labels, insertion order
	ID          int64     `json:"id"`                    // Unique, immutable, clock-derived
	Priority    Priority  `json:"priority"`              // low / medium / high
	Status      Status    `json:"status"`                // todo / in-progress / completed
	Completed   bool      `json:"completed"`             // Mirrors Status == completed after add/update
	DueSoon     bool      `json:"dueSoon"`               // Derived from DueDate at (re)computation time
}

// NewTask builds a Task from a fully populated draft. The store-assigned ID is
// taken as given; Completed and DueSoon are computed here so they can never
// diverge from the draft's Status and DueDate on creation.
func NewTask(id int64, d TaskDraft, now time.Time) *Task {
	return &Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Status:      d.Status,
		Completed:   d.Status == StatusCompleted,
		DueDate:     DateOnly(d.DueDate),
		DueSoon:     IsDueSoon(d.DueDate, now),
		Tags:        cloneTags(d.Tags),
		Created:     now,
	}
}

// ApplyDraft replaces all mutable fields with the draft's values and
// recomputes Completed and DueSoon. ID and Created are preserved.
func (t *Task) ApplyDraft(d TaskDraft, now time.Time) {
	t.Title = d.Title
	t.Description = d.Description
	t.Priority = d.Priority
	t.Status = d.Status
	t.Completed = d.Status == StatusCompleted
	t.DueDate = DateOnly(d.DueDate)
	t.DueSoon = IsDueSoon(d.DueDate, now)
	t.Tags = cloneTags(d.Tags)
}

// DueToday returns true if the task is incomplete and due on the given day.
func (t *Task) DueToday(today time.Time) bool {
	return !t.Completed && DateOnly(t.DueDate).Equal(DateOnly(today))
}

// IsDueSoon reports whether due falls between today and today plus the
// due-soon window, inclusive. Both values are compared as local calendar
// dates with the time of day zeroed.
func IsDueSoon(due, today time.Time) bool {
	d := DateOnly(due)
	start := DateOnly(today)
	end := start.AddDate(0, 0, DueSoonWindowDays)
	return !d.Before(start) && !d.After(end)
}

// DateOnly strips the time-of-day component, keeping the local calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateLayout is the calendar date format accepted on all external surfaces.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

// FormatDate formats a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
