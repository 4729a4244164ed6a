package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestTaskStats_Execute(t *testing.T) {
	repo := testutil.NewMockTaskRepository()

	a := ucTask(1, "A")
	a.Priority = domain.PriorityHigh
	a.DueDate = domain.DateOnly(ucNow)

	b := ucTask(2, "B")
	b.Completed = true
	b.Status = domain.StatusCompleted

	c := ucTask(3, "C")
	c.Priority = domain.PriorityHigh
	c.Completed = true
	c.DueDate = domain.DateOnly(ucNow.AddDate(0, 0, 5))

	repo.Seed(a, b, c)
	uc := NewTaskStats(repo, &testutil.MockClock{NowTime: ucNow})

	out, err := uc.Execute(context.Background(), TaskStatsInput{})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Completed)
	assert.Equal(t, 1, out.Pending)
	assert.Equal(t, 2, out.HighPriority, "high priority counts completed tasks too")
	assert.Equal(t, 67, out.CompletionRate)
	assert.Equal(t, 2, out.DueToday, "draft default due date is today")
}

func TestTaskStats_Execute_Empty(t *testing.T) {
	uc := NewTaskStats(testutil.NewMockTaskRepository(), &testutil.MockClock{NowTime: ucNow})

	out, err := uc.Execute(context.Background(), TaskStatsInput{})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Zero(t, out.CompletionRate)
}
