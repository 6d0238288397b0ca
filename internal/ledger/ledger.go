// Package ledger records, per calendar date, which routine tasks were marked
// done and a completion-rate snapshot for that date. Both live in the
// key-value store under deterministic per-date keys.
package ledger

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/candyhq/candy/internal/constants"
	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/logger"
	"github.com/candyhq/candy/internal/utils"
)

type Ledger struct {
	kv kv.Store
}

func New(store kv.Store) *Ledger {
	return &Ledger{kv: store}
}

// FinishedKey returns the id-set key for a date.
func FinishedKey(date time.Time) string {
	return constants.FinishedKeyPrefix + utils.DateKey(date)
}

// RateKey returns the rate-snapshot key for a date.
func RateKey(date time.Time) string {
	return constants.FinishedRateKeyPrefix + utils.DateKey(date)
}

// MarkComplete adds taskID to the date's id-set. Marking an already-marked
// task is a no-op on the set. If totalActive > 0 the rate snapshot for the
// date is recomputed from the post-insertion count and persisted; the
// denominator is the caller's snapshot of the active-task count, never
// recomputed later.
func (l *Ledger) MarkComplete(date time.Time, taskID string, totalActive int) {
	ids := l.Completed(date)

	present := false
	for _, id := range ids {
		if id == taskID {
			present = true
			break
		}
	}
	if !present {
		ids = append(ids, taskID)
	}

	l.writeSet(date, ids)
	l.writeRate(date, len(ids), totalActive)
}

// UnmarkComplete removes taskID from the date's id-set and recomputes the
// rate snapshot the same way MarkComplete does.
func (l *Ledger) UnmarkComplete(date time.Time, taskID string, totalActive int) {
	ids := l.Completed(date)

	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != taskID {
			kept = append(kept, id)
		}
	}

	l.writeSet(date, kept)
	l.writeRate(date, len(kept), totalActive)
}

// Completed returns the id-set for the date, empty if never written or if the
// read fails. Storage errors never propagate past the ledger.
func (l *Ledger) Completed(date time.Time) []string {
	raw, found, err := l.kv.Get(FinishedKey(date))
	if err != nil {
		logger.Error("Failed to read completion set", "date", utils.DateKey(date), "error", err)
		return []string{}
	}
	if !found {
		return []string{}
	}
	return decodeSet(raw, utils.DateKey(date))
}

// CompletedBatch returns the id-sets for each date in order, using a single
// multi-key read. One date's missing key never affects another's result.
func (l *Ledger) CompletedBatch(dates []time.Time) [][]string {
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = FinishedKey(d)
	}

	items, err := l.kv.MultiGet(keys)
	if err != nil || len(items) != len(keys) {
		logger.Error("Failed to batch-read completion sets", "error", err)
		out := make([][]string, len(dates))
		for i := range out {
			out[i] = []string{}
		}
		return out
	}

	out := make([][]string, len(dates))
	for i, item := range items {
		if !item.Found {
			out[i] = []string{}
			continue
		}
		out[i] = decodeSet(item.Value, utils.DateKey(dates[i]))
	}
	return out
}

// Rate returns the persisted completion-rate snapshot for the date, 0 if
// absent or unreadable.
func (l *Ledger) Rate(date time.Time) float64 {
	raw, found, err := l.kv.Get(RateKey(date))
	if err != nil {
		logger.Error("Failed to read completion rate", "date", utils.DateKey(date), "error", err)
		return 0
	}
	if !found {
		return 0
	}
	return decodeRate(raw, utils.DateKey(date))
}

// RateBatch returns the rate snapshots for each date in order, single read.
func (l *Ledger) RateBatch(dates []time.Time) []float64 {
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = RateKey(d)
	}

	items, err := l.kv.MultiGet(keys)
	if err != nil || len(items) != len(keys) {
		logger.Error("Failed to batch-read completion rates", "error", err)
		return make([]float64, len(dates))
	}

	out := make([]float64, len(dates))
	for i, item := range items {
		if !item.Found {
			continue
		}
		out[i] = decodeRate(item.Value, utils.DateKey(dates[i]))
	}
	return out
}

func (l *Ledger) writeSet(date time.Time, ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		logger.Error("Failed to serialize completion set", "date", utils.DateKey(date), "error", err)
		return
	}
	if err := l.kv.Set(FinishedKey(date), string(data)); err != nil {
		logger.Error("Failed to persist completion set", "date", utils.DateKey(date), "error", err)
	}
}

func (l *Ledger) writeRate(date time.Time, completed, totalActive int) {
	if totalActive <= 0 {
		return
	}

	rate := float64(completed) / float64(totalActive)
	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := l.kv.Set(RateKey(date), value); err != nil {
		logger.Error("Failed to persist completion rate", "date", utils.DateKey(date), "error", err)
	}
}

func decodeSet(raw, date string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Error("Failed to parse completion set", "date", date, "error", err)
		return []string{}
	}
	return ids
}

func decodeRate(raw, date string) float64 {
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Error("Failed to parse completion rate", "date", date, "error", err)
		return 0
	}
	return rate
}
