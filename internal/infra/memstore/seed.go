package memstore

import (
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// builtinSeeds are the sample tasks every fresh session starts with. Due
// dates are relative to today so the due-soon and overdue states are always
// represented.
var builtinSeeds = []seedEntry{
	{
		Title:       "Finish the quarterly report",
		Description: "Summarize goals, spend, and the roadmap for Q2",
		Priority:    string(domain.PriorityHigh),
		Status:      string(domain.StatusInProgress),
		DueIn:       2,
		Tags:        []string{"work", "writing", "important"},
	},
	{
		Title:       "Team sync meeting",
		Description: "Weekly team sync and project update",
		Priority:    string(domain.PriorityMedium),
		Status:      string(domain.StatusCompleted),
		DueIn:       -1,
		Tags:        []string{"meeting", "team"},
	},
	{
		Title:       "Learn advanced Go patterns",
		Description: "Study generics, iterators, and profile-guided builds",
		Priority:    string(domain.PriorityMedium),
		Status:      string(domain.StatusTodo),
		DueIn:       12,
		Tags:        []string{"learning", "go"},
	},
	{
		Title:       "Fix production bugs",
		Description: "Critical fixes for the next deployment window",
		Priority:    string(domain.PriorityHigh),
		Status:      string(domain.StatusInProgress),
		DueIn:       1,
		Tags:        []string{"bugs", "urgent", "production"},
	},
	{
		Title:       "Documentation update",
		Description: "Refresh the README and the onboarding guide",
		Priority:    string(domain.PriorityLow),
		Status:      string(domain.StatusTodo),
		DueIn:       13,
		Tags:        []string{"documentation", "writing"},
	},
}

// seedEntry describes one sample task. Zero-valued fields take the draft
// defaults. DueIn is an offset in days from today and is only consulted when
// Due is empty.
type seedEntry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Priority    string   `yaml:"priority"`
	Status      string   `yaml:"status"`
	Due         string   `yaml:"due"`
	Tags        []string `yaml:"tags"`
	DueIn       int      `yaml:"dueIn"`
}

// SeedBuiltin populates the store with the builtin sample tasks.
func SeedBuiltin(s *Store, clock domain.Clock) error {
	return seedEntries(s, clock, builtinSeeds)
}

func seedEntries(s *Store, clock domain.Clock, entries []seedEntry) error {
	for i, entry := range entries {
		if err := seedOne(s, clock, entry); err != nil {
			return fmt.Errorf("seed task %d: %w", i+1, err)
		}
	}
	return nil
}

func seedOne(s *Store, clock domain.Clock, entry seedEntry) error {
	now := clock.Now()

	draft := domain.NewTaskDraft(now)
	draft.Title = entry.Title
	draft.Description = entry.Description
	for _, tag := range entry.Tags {
		draft.AddTag(tag)
	}

	if entry.Priority != "" {
		p, err := domain.ParsePriority(entry.Priority)
		if err != nil {
			return fmt.Errorf("priority %q: %w", entry.Priority, err)
		}
		draft.Priority = p
	}
	if entry.Status != "" {
		st, err := domain.ParseStatus(entry.Status)
		if err != nil {
			return fmt.Errorf("status %q: %w", entry.Status, err)
		}
		draft.Status = st
	}
	switch {
	case entry.Due != "":
		due, err := domain.ParseDate(entry.Due)
		if err != nil {
			return err
		}
		draft.DueDate = due
	case entry.DueIn != 0:
		draft.DueDate = domain.DateOnly(now).AddDate(0, 0, entry.DueIn)
	}

	if err := draft.Validate(); err != nil {
		return err
	}

	id, err := s.NextID()
	if err != nil {
		return err
	}
	return s.Save(domain.NewTask(id, draft, now))
}
