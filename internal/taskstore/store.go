// Package taskstore owns the canonical collection of routine task
// definitions. The collection lives in memory for the session and is written
// through to the key-value store as a single JSON document on every mutation.
package taskstore

import (
	"encoding/json"
	"time"

	"github.com/candyhq/candy/internal/constants"
	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/logger"
	"github.com/candyhq/candy/internal/models"
)

// Store is constructed once per session and handed to consumers; there is no
// package-level instance.
type Store struct {
	kv    kv.Store
	tasks []models.RoutineTask
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Load reads the persisted collection. An absent key means a fresh store. A
// read failure degrades to an empty collection so the session can continue.
func (s *Store) Load() error {
	raw, found, err := s.kv.Get(constants.TaskCollectionKey)
	if err != nil {
		logger.Error("Failed to read task collection, starting empty", "error", err)
		s.tasks = nil
		return nil
	}
	if !found {
		s.tasks = nil
		return nil
	}

	var tasks []models.RoutineTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		logger.Error("Failed to parse task collection, starting empty", "error", err)
		s.tasks = nil
		return nil
	}

	s.tasks = tasks
	return nil
}

// Add appends a task with caller-supplied id. Timestamps are stamped here;
// DeletedAt starts nil. Uniqueness of the id is the caller's contract and is
// not checked.
func (s *Store) Add(task models.RoutineTask) {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.DeletedAt = nil

	s.tasks = append(s.tasks, task)
	s.persist()
}

// Update merges the non-nil fields of upd into the task with the given id and
// stamps UpdatedAt. Unknown ids are a silent no-op.
func (s *Store) Update(id string, upd models.TaskUpdate) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		t := &s.tasks[i]
		if upd.Label != nil {
			t.Label = *upd.Label
		}
		if upd.IsFavorite != nil {
			t.IsFavorite = *upd.IsFavorite
		}
		if upd.Color != nil {
			t.Color = *upd.Color
		}
		if upd.Icon != nil {
			t.Icon = *upd.Icon
		}
		if upd.DoItAt != nil {
			t.DoItAt = *upd.DoItAt
		}
		if upd.Repeat != nil {
			t.Repeat = *upd.Repeat
		}
		if upd.RepeatValues != nil {
			t.RepeatValues = upd.RepeatValues
		}
		t.UpdatedAt = time.Now()

		s.persist()
		return
	}
}

// SoftDelete stamps DeletedAt on the task with the given id. The record stays
// in the collection so historical queries keep seeing it. Unknown ids are a
// silent no-op.
func (s *Store) SoftDelete(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		now := time.Now()
		s.tasks[i].DeletedAt = &now
		s.tasks[i].UpdatedAt = now

		s.persist()
		return
	}
}

// Get returns the task with the given id, deleted or not.
func (s *Store) Get(id string) (models.RoutineTask, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.RoutineTask{}, false
}

// List returns every task, including soft-deleted ones, in insertion order.
// Visibility filtering is the query engine's job because historical queries
// need records deleted after the query date.
func (s *Store) List() []models.RoutineTask {
	out := make([]models.RoutineTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// persist writes the whole collection back. Failures are logged and swallowed;
// the in-memory state stays correct for the session but is not durable.
func (s *Store) persist() {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		logger.Error("Failed to serialize task collection", "error", err)
		return
	}
	if err := s.kv.Set(constants.TaskCollectionKey, string(data)); err != nil {
		logger.Error("Failed to persist task collection", "error", err)
	}
}
