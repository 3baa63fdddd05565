// Package task manages the study task collection.
package task

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tobisalami/studia/internal/models"
	"github.com/tobisalami/studia/store"
)

// ErrNotFound is returned when no task matches the requested id.
var ErrNotFound = errors.New("task not found")

const idLength = 8

// Stats summarizes the state of the task collection. CompletionRate is
// a percentage and is 0 when the collection is empty.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	HighPriority   int
	CompletionRate float64
}

// Manager owns the in-memory task collection and keeps the persisted
// collection in sync on every mutation.
type Manager struct {
	db    store.DB
	tasks []models.Task
}

// NewManager loads the persisted task collection and returns a manager
// over it.
func NewManager(db store.DB) (*Manager, error) {
	tasks, err := db.LoadTasks()
	if err != nil {
		return nil, err
	}

	return &Manager{
		db:    db,
		tasks: tasks,
	}, nil
}

// Add creates a task with a freshly generated id and appends it to the
// collection. Priorities outside the known set fall back to Medium.
// The id is returned even if persisting fails, since the in-memory
// mutation is retained.
func (m *Manager) Add(
	title, description string,
	priority models.Priority,
	dueDate string,
) (string, error) {
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	t := models.Task{
		ID:          uuid.NewString()[:idLength],
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}

	m.tasks = append(m.tasks, t)

	return t.ID, m.db.SaveTasks(m.tasks)
}

// All returns every task ordered by the composite key: incomplete
// before completed, then by priority (High, Medium, Low, unrecognized
// last). The sort is stable so insertion order is preserved between
// equal keys.
func (m *Manager) All() []models.Task {
	tasks := make([]models.Task, len(m.tasks))
	copy(tasks, m.tasks)

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}

		return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
	})

	return tasks
}

// Get returns the task with the given id.
func (m *Manager) Get(id string) (models.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return m.tasks[i], nil
		}
	}

	return models.Task{}, ErrNotFound
}

// Complete marks a task as completed and records the completion time.
// Completing an already-completed task is a no-op success.
func (m *Manager) Complete(id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}

		if m.tasks[i].Completed {
			return nil
		}

		now := time.Now()
		m.tasks[i].Completed = true
		m.tasks[i].CompletedAt = &now

		return m.db.SaveTasks(m.tasks)
	}

	return ErrNotFound
}

// Delete removes a task from the collection.
func (m *Manager) Delete(id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID != id {
			continue
		}

		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)

		return m.db.SaveTasks(m.tasks)
	}

	return ErrNotFound
}

// Priority returns the pending high-priority tasks in insertion order.
func (m *Manager) Priority() []models.Task {
	var tasks []models.Task

	for i := range m.tasks {
		t := m.tasks[i]

		if t.Priority == models.PriorityHigh && !t.Completed {
			tasks = append(tasks, t)
		}
	}

	return tasks
}

// Statistics computes aggregate counts over the task collection.
func (m *Manager) Statistics() Stats {
	var s Stats

	s.Total = len(m.tasks)

	for i := range m.tasks {
		if m.tasks[i].Completed {
			s.Completed++
		}

		if m.tasks[i].Priority == models.PriorityHigh {
			s.HighPriority++
		}
	}

	s.Pending = s.Total - s.Completed

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}

	return s
}
