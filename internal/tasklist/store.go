// Package tasklist holds the client's view of the user's tasks.
//
// The Store is a cache of server truth, never a source of truth: every
// mutation's local effect is derived from the server's response payload.
// The one exception is deletion, where the server returns no body and
// removal by id is authoritative given a success status.
package tasklist

import (
	"sync"

	"taskdeck/internal/service"
)

// Store is the ordered local mirror of the server's task list.
// Insertion order is irrelevant to correctness but preserved for display
// stability.
type Store struct {
	mu    sync.RWMutex
	tasks []service.Task
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Tasks returns a copy of the current list in display order.
func (s *Store) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// ReplaceAll replaces the entire list with the server's sequence.
func (s *Store) ReplaceAll(tasks []service.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]service.Task, len(tasks))
	copy(s.tasks, tasks)
}

// Append adds the server-returned record to the end of the list.
func (s *Store) Append(task service.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// Remove deletes the task with the given id. Reports whether it was present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Reconcile replaces the local copy of the task matching task.ID with the
// server-returned record, leaving every other task untouched. Reports
// whether a matching task was found.
func (s *Store) Reconcile(task service.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			return true
		}
	}
	return false
}
