// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"slices"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the configured time forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks     map[int64]*domain.Task
	SaveErr   error
	GetErr    error
	ListErr   error
	DeleteErr error
	NextIDErr error
	Order     []int64
	NextIDN   int64
}

// NewMockTaskRepository creates a new MockTaskRepository with initialized maps.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{
		Tasks:   make(map[int64]*domain.Task),
		NextIDN: 1,
	}
}

// Ensure MockTaskRepository implements domain.TaskRepository interface.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)

// Get retrieves a task by ID. Returns nil for an unknown ID.
func (m *MockTaskRepository) Get(id int64) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// List returns all tasks in insertion order.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Order))
	for _, id := range m.Order {
		tasks = append(tasks, m.Tasks[id])
	}
	return tasks, nil
}

// Save stores a task, preserving its position on replacement.
func (m *MockTaskRepository) Save(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if _, ok := m.Tasks[task.ID]; !ok {
		m.Order = append(m.Order, task.ID)
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Tasks[id]; ok {
		delete(m.Tasks, id)
		m.Order = slices.DeleteFunc(m.Order, func(v int64) bool { return v == id })
	}
	return nil
}

// NextID returns the next available task ID.
func (m *MockTaskRepository) NextID() (int64, error) {
	if m.NextIDErr != nil {
		return 0, m.NextIDErr
	}
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// Seed saves a batch of tasks in order.
func (m *MockTaskRepository) Seed(tasks ...*domain.Task) {
	for _, t := range tasks {
		m.Tasks[t.ID] = t
		m.Order = append(m.Order, t.ID)
	}
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) {
	m.Entries = append(m.Entries, "DEBUG "+category+" "+msg)
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) {
	m.Entries = append(m.Entries, "INFO "+category+" "+msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) {
	m.Entries = append(m.Entries, "WARN "+category+" "+msg)
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) {
	m.Entries = append(m.Entries, "ERROR "+category+" "+msg)
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}
