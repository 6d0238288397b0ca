// Package mood keeps the date-keyed mood log: at most one record per
// calendar date, index 0-4 on the ordinal scale (0 = best).
package mood

import (
	"encoding/json"
	"fmt"

	"github.com/candyhq/candy/internal/constants"
	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/logger"
	"github.com/candyhq/candy/internal/models"
)

type Store struct {
	kv   kv.Store
	logs []models.MoodLog
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Load reads the persisted mood log; absence or a read failure yields an
// empty log.
func (s *Store) Load() error {
	raw, found, err := s.kv.Get(constants.MoodCollectionKey)
	if err != nil {
		logger.Error("Failed to read mood log, starting empty", "error", err)
		s.logs = nil
		return nil
	}
	if !found {
		s.logs = nil
		return nil
	}

	var logs []models.MoodLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		logger.Error("Failed to parse mood log, starting empty", "error", err)
		s.logs = nil
		return nil
	}

	s.logs = logs
	return nil
}

// Add records a mood for a date, replacing any existing record for that date.
func (s *Store) Add(log models.MoodLog) error {
	if !models.ValidMoodIndex(log.MoodIndex) {
		return fmt.Errorf("invalid mood index: %d", log.MoodIndex)
	}

	// Filter-then-append keeps the at-most-one-per-date invariant.
	kept := make([]models.MoodLog, 0, len(s.logs)+1)
	for _, l := range s.logs {
		if l.Date != log.Date {
			kept = append(kept, l)
		}
	}
	s.logs = append(kept, log)

	s.persist()
	return nil
}

// Get returns the mood record for a date, if any.
func (s *Store) Get(date string) (models.MoodLog, bool) {
	for _, l := range s.logs {
		if l.Date == date {
			return l, true
		}
	}
	return models.MoodLog{}, false
}

// All returns every mood record.
func (s *Store) All() []models.MoodLog {
	out := make([]models.MoodLog, len(s.logs))
	copy(out, s.logs)
	return out
}

func (s *Store) persist() {
	data, err := json.Marshal(s.logs)
	if err != nil {
		logger.Error("Failed to serialize mood log", "error", err)
		return
	}
	if err := s.kv.Set(constants.MoodCollectionKey, string(data)); err != nil {
		logger.Error("Failed to persist mood log", "error", err)
	}
}
