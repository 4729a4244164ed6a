package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskDraft_Defaults(t *testing.T) {
	today := time.Date(2026, 2, 16, 18, 45, 0, 0, time.Local)
	d := NewTaskDraft(today)

	assert.Empty(t, d.Title)
	assert.Empty(t, d.Description)
	assert.Equal(t, PriorityMedium, d.Priority)
	assert.Equal(t, StatusTodo, d.Status)
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.Local), d.DueDate)
	assert.Empty(t, d.Tags)
	assert.False(t, d.IsEdit())
}

func TestDraftOf_CopiesTags(t *testing.T) {
	task := &Task{
		ID:    3,
		Title: "Learn React",
		Tags:  []string{"react", "frontend"},
	}

	d := DraftOf(task)
	require.True(t, d.IsEdit())

	d.AddTag("important")
	d.RemoveTag("react")

	// Draft edits must not reach the committed task.
	assert.Equal(t, []string{"react", "frontend"}, task.Tags)
	assert.Equal(t, []string{"frontend", "important"}, d.Tags)
}

func TestAddTag(t *testing.T) {
	d := NewTaskDraft(time.Now())

	assert.True(t, d.AddTag("react"))
	assert.True(t, d.AddTag("  frontend  "), "tags are trimmed before adding")
	assert.Equal(t, []string{"react", "frontend"}, d.Tags)

	// Duplicates are silently ignored; the set stays unchanged.
	assert.False(t, d.AddTag("react"))
	assert.False(t, d.AddTag(" react "))
	assert.Equal(t, []string{"react", "frontend"}, d.Tags)

	// Case-sensitive exact match: different case is a different tag.
	assert.True(t, d.AddTag("React"))
	assert.Equal(t, []string{"react", "frontend", "React"}, d.Tags)

	assert.False(t, d.AddTag(""))
	assert.False(t, d.AddTag("   "))
}

func TestRemoveTag(t *testing.T) {
	d := NewTaskDraft(time.Now())
	d.AddTag("a")
	d.AddTag("b")
	d.AddTag("c")

	assert.True(t, d.RemoveTag("b"))
	assert.Equal(t, []string{"a", "c"}, d.Tags)

	assert.False(t, d.RemoveTag("missing"))
	assert.False(t, d.RemoveTag("A"), "removal is case-sensitive")
	assert.Equal(t, []string{"a", "c"}, d.Tags)
}

func TestDraftValidate(t *testing.T) {
	d := NewTaskDraft(time.Now())
	assert.ErrorIs(t, d.Validate(), ErrEmptyTitle)

	d.Title = "   "
	assert.ErrorIs(t, d.Validate(), ErrEmptyTitle)

	d.Title = "Valid"
	assert.NoError(t, d.Validate())

	d.Priority = "urgent"
	assert.ErrorIs(t, d.Validate(), ErrInvalidPriority)

	d.Priority = PriorityLow
	d.Status = "done"
	assert.ErrorIs(t, d.Validate(), ErrInvalidStatus)
}
