package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

var formNow = time.Date(2026, 2, 16, 9, 0, 0, 0, time.Local)

// recordingSink captures which sink method was invoked.
type recordingSink struct {
	err       error
	added     *domain.TaskDraft
	updated   *domain.TaskDraft
	updatedID int64
}

func (s *recordingSink) Add(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.added = &draft
	return domain.NewTask(100, draft, formNow), nil
}

func (s *recordingSink) Update(_ context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = &draft
	s.updatedID = id
	task := domain.NewTask(id, draft, formNow)
	return task, nil
}

func TestController_OpenForCreate(t *testing.T) {
	c := NewController()
	assert.False(t, c.IsOpen())
	assert.Nil(t, c.Draft())

	c.OpenForCreate(formNow)
	require.True(t, c.IsOpen())
	assert.Equal(t, domain.PriorityMedium, c.Draft().Priority)
	assert.Equal(t, domain.StatusTodo, c.Draft().Status)
	assert.False(t, c.Draft().IsEdit())
}

func TestController_OpenForEdit(t *testing.T) {
	draft := domain.NewTaskDraft(formNow)
	draft.Title = "Existing"
	task := domain.NewTask(7, draft, formNow)

	c := NewController()
	c.OpenForEdit(task)
	require.True(t, c.IsOpen())
	assert.Equal(t, int64(7), c.Draft().ID)
	assert.Equal(t, "Existing", c.Draft().Title)
	assert.True(t, c.Draft().IsEdit())
}

func TestController_Cancel(t *testing.T) {
	c := NewController()
	c.OpenForCreate(formNow)
	c.Draft().Title = "Half-typed"

	c.Cancel()
	assert.False(t, c.IsOpen())
	assert.Nil(t, c.Draft())
}

func TestController_Submit_RoutesToAdd(t *testing.T) {
	sink := &recordingSink{}
	c := NewController()
	c.OpenForCreate(formNow)
	c.Draft().Title = "New one"

	task, err := c.Submit(context.Background(), sink)
	require.NoError(t, err)
	require.NotNil(t, sink.added)
	assert.Nil(t, sink.updated)
	assert.Equal(t, "New one", task.Title)
	assert.False(t, c.IsOpen(), "form closes after successful submit")
}

func TestController_Submit_RoutesToUpdate(t *testing.T) {
	draft := domain.NewTaskDraft(formNow)
	draft.Title = "Old"
	task := domain.NewTask(9, draft, formNow)

	sink := &recordingSink{}
	c := NewController()
	c.OpenForEdit(task)
	c.Draft().Title = "Revised"

	got, err := c.Submit(context.Background(), sink)
	require.NoError(t, err)
	require.NotNil(t, sink.updated)
	assert.Nil(t, sink.added)
	assert.Equal(t, int64(9), sink.updatedID)
	assert.Equal(t, "Revised", got.Title)
	assert.False(t, c.IsOpen())
}

func TestController_Submit_Closed(t *testing.T) {
	c := NewController()

	_, err := c.Submit(context.Background(), &recordingSink{})
	assert.ErrorIs(t, err, domain.ErrFormClosed)
}

func TestController_Submit_InvalidDraftStaysOpen(t *testing.T) {
	c := NewController()
	c.OpenForCreate(formNow)

	_, err := c.Submit(context.Background(), &recordingSink{})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.True(t, c.IsOpen(), "failed submit keeps the draft")
}

func TestController_Submit_SinkErrorStaysOpen(t *testing.T) {
	sink := &recordingSink{err: errors.New("store down")}
	c := NewController()
	c.OpenForCreate(formNow)
	c.Draft().Title = "Hold on to me"

	_, err := c.Submit(context.Background(), sink)
	require.Error(t, err)
	assert.True(t, c.IsOpen())
	assert.Equal(t, "Hold on to me", c.Draft().Title)
}
