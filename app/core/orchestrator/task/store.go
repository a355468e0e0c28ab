package task

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"sahayak/app/pkg/types"
)

var ErrEmptyDescription = errors.New("task: description is required")

// Store owns the mutable task list. All access goes through the mutex so
// concurrent routing calls observe either none or all of a mutation.
type Store struct {
	mu     sync.Mutex
	tasks  []types.Task
	lastID int64
}

func NewStore() *Store {
	return &Store{}
}

// List returns a snapshot copy of the current tasks in store order.
// Mutating the returned slice never affects the store.
func (s *Store) List() []types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []types.Task {
	out := make([]types.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a new pending task and returns a copy of it.
func (s *Store) Add(description string) (types.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return types.Task{}, ErrEmptyDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := types.Task{
		ID:          s.newIDLocked(),
		Description: description,
		CreatedAt:   time.Now(),
		Completed:   false,
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// newIDLocked assigns millisecond-timestamp ids, bumping forward on
// collision so ids stay unique and monotonic within the process.
func (s *Store) newIDLocked() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

// SetCompletion flips the completed flag of the task with the given id.
// The second return is false when no such task exists.
func (s *Store) SetCompletion(id string, completed bool) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = completed
			return s.tasks[i], true
		}
	}
	return types.Task{}, false
}

// RemoveByID deletes the task with the given id and returns it.
func (s *Store) RemoveByID(id string) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return removed, true
		}
	}
	return types.Task{}, false
}

// CompleteAt marks the task at the 1-based index in current store order
// as completed. Index resolution and the mutation happen under one lock
// so a concurrent add cannot shift the target.
func (s *Store) CompleteAt(index int) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 1 || index > len(s.tasks) {
		return types.Task{}, false
	}
	s.tasks[index-1].Completed = true
	return s.tasks[index-1], true
}

// RemoveAt deletes the task at the 1-based index in current store order.
func (s *Store) RemoveAt(index int) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 1 || index > len(s.tasks) {
		return types.Task{}, false
	}
	removed := s.tasks[index-1]
	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	return removed, true
}

// TaskAt returns a copy of the task at the 1-based index.
func (s *Store) TaskAt(index int) (types.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 1 || index > len(s.tasks) {
		return types.Task{}, false
	}
	return s.tasks[index-1], true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
