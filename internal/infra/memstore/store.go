// Package memstore provides the in-memory implementation of TaskRepository.
// The collection lives for one process invocation; nothing is ever persisted.
package memstore

import (
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store implements domain.TaskRepository with a map plus an insertion-order
// index. The mutex keeps mutations atomic when bubbletea commands run off
// the UI loop.
type Store struct {
	tasks  map[int64]*domain.Task
	clock  domain.Clock
	order  []int64
	mu     sync.RWMutex
	lastID int64
}

// New creates an empty Store. IDs are derived from the given clock.
func New(clock domain.Clock) *Store {
	return &Store{
		tasks: make(map[int64]*domain.Task),
		clock: clock,
	}
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[id], nil
}

// List retrieves all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks, nil
}

// Save appends a new task or replaces an existing one, keeping its position
// in the insertion order.
func (s *Store) Save(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		s.order = append(s.order, task.ID)
	}
	s.tasks[task.ID] = task
	return nil
}

// Delete removes a task by ID. Removing an unknown ID is a no-op.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return nil
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// NextID returns a fresh task ID derived from the clock's UnixMilli, bumped
// when necessary so IDs stay strictly increasing within the session.
func (s *Store) NextID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id, nil
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
