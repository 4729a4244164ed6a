package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

var ucNow = time.Date(2026, 2, 16, 14, 30, 0, 0, time.Local)

func ucDraft(title string) domain.TaskDraft {
	d := domain.NewTaskDraft(ucNow)
	d.Title = title
	return d
}

func ucTask(id int64, title string) *domain.Task {
	return domain.NewTask(id, ucDraft(title), ucNow)
}

func TestAddTask_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	clock := &testutil.MockClock{NowTime: ucNow}
	logger := &testutil.MockLogger{}
	uc := NewAddTask(repo, clock, logger)

	draft := ucDraft("Write report")
	draft.Priority = domain.PriorityHigh
	draft.DueDate = ucNow.AddDate(0, 0, 2)
	draft.Tags = []string{"work"}

	out, err := uc.Execute(context.Background(), AddTaskInput{Draft: draft})
	require.NoError(t, err)
	require.NotNil(t, out.Task)

	assert.Equal(t, int64(1), out.Task.ID)
	assert.Equal(t, "Write report", out.Task.Title)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.True(t, out.Task.DueSoon)
	assert.False(t, out.Task.Completed)
	assert.Equal(t, ucNow, out.Task.Created)

	stored, err := repo.Get(1)
	require.NoError(t, err)
	assert.Same(t, out.Task, stored)
	assert.NotEmpty(t, logger.Entries)
}

func TestAddTask_Execute_EmptyTitle(t *testing.T) {
	uc := NewAddTask(testutil.NewMockTaskRepository(), &testutil.MockClock{NowTime: ucNow}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Draft: ucDraft("   ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.SaveErr = errors.New("store full")
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: ucNow}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Draft: ucDraft("X")})
	assert.ErrorContains(t, err, "save task")
}

func TestAddTask_Execute_NextIDError(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	repo.NextIDErr = errors.New("id source down")
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: ucNow}, nil)

	_, err := uc.Execute(context.Background(), AddTaskInput{Draft: ucDraft("X")})
	assert.ErrorContains(t, err, "generate task ID")
}

func TestAddTask_Execute_CompletedStatus(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewAddTask(repo, &testutil.MockClock{NowTime: ucNow}, nil)

	draft := ucDraft("Already done")
	draft.Status = domain.StatusCompleted

	out, err := uc.Execute(context.Background(), AddTaskInput{Draft: draft})
	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
}
