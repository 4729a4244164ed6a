package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TaskStatsInput contains the parameters for computing task statistics.
type TaskStatsInput struct{}

// TaskStatsOutput contains aggregate statistics over all stored tasks.
// Fields are ordered to minimize memory padding.
type TaskStatsOutput struct {
	Total          int // Number of stored tasks
	Completed      int // Tasks with Completed set
	Pending        int // Tasks without Completed set
	HighPriority   int // Tasks with high priority, regardless of completion
	DueToday       int // Tasks whose due date falls on the current day
	CompletionRate int // Completed / Total as a rounded percentage, 0 when empty
}

// TaskStats is the use case for computing aggregate task statistics.
type TaskStats struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewTaskStats creates a new TaskStats use case.
func NewTaskStats(tasks domain.TaskRepository, clock domain.Clock) *TaskStats {
	return &TaskStats{
		tasks: tasks,
		clock: clock,
	}
}

// Execute counts tasks over the full store, ignoring any active view query.
func (uc *TaskStats) Execute(_ context.Context, _ TaskStatsInput) (*TaskStatsOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := &TaskStatsOutput{Total: len(all)}
	now := uc.clock.Now()
	for _, task := range all {
		if task.Completed {
			out.Completed++
		} else {
			out.Pending++
		}
		if task.Priority == domain.PriorityHigh {
			out.HighPriority++
		}
		if task.DueToday(now) {
			out.DueToday++
		}
	}
	if out.Total > 0 {
		out.CompletionRate = int(math.Round(float64(out.Completed) / float64(out.Total) * 100))
	}
	return out, nil
}
