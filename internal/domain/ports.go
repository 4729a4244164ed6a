package domain

import "time"

// Clock provides the current time. Injected so due-soon computation and ID
// assignment are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TaskRepository is the session-scoped task store. Implementations hold the
// ordered collection in memory; insertion order is the canonical order
// before any sorting.
type TaskRepository interface {
	// Get retrieves a task by ID. Returns nil if not found.
	Get(id int64) (*Task, error)

	// List retrieves all tasks in insertion order.
	List() ([]*Task, error)

	// Save appends a new task or replaces an existing one in place,
	// keeping its position in the insertion order.
	Save(task *Task) error

	// Delete removes a task by ID. Removing an unknown ID is a no-op.
	Delete(id int64) error

	// NextID returns a fresh unique task ID, derived from the clock and
	// strictly increasing within the session.
	NextID() (int64, error)
}

// Logger records application events. Implementations must tolerate a nil
// receiver being wrapped by callers that treat logging as optional.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}
