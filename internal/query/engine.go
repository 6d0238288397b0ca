// Package query joins the task store and the completion ledger into
// date-scoped views: which tasks are active on a date, which of those are
// done, and aggregate statistics across date ranges.
package query

import (
	"time"

	"github.com/candyhq/candy/internal/ledger"
	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/taskstore"
	"github.com/candyhq/candy/internal/utils"
)

type Engine struct {
	tasks  *taskstore.Store
	ledger *ledger.Ledger
}

func New(tasks *taskstore.Store, l *ledger.Ledger) *Engine {
	return &Engine{tasks: tasks, ledger: l}
}

// IsVisibleOn reports whether a task participates in queries for the given
// date: not deleted, or deleted on or after that date. A task stays visible
// on its own deletion date; comparisons are at day granularity so the
// time-of-day of the deletion never hides it from a same-day query.
func IsVisibleOn(task models.RoutineTask, date time.Time) bool {
	if task.DeletedAt == nil {
		return true
	}
	return !utils.DayOf(*task.DeletedAt).Before(utils.DayOf(date))
}

// IsActiveOn evaluates the task's recurrence rule for the date. Only daily
// repeat is gated by the weekday set; weekly and monthly repeats are accepted
// in the data model but have no defined occurrence semantics yet, so they are
// never active.
func IsActiveOn(task models.RoutineTask, date time.Time) bool {
	switch task.Repeat {
	case models.RepeatDaily:
		return task.RepeatsOn(models.WeekdayToken(date.Weekday()))
	case models.RepeatWeekly, models.RepeatMonthly:
		return false
	default:
		return false
	}
}

// ActiveTasksForDate returns the tasks visible and active on the date, in the
// store's insertion order, each annotated with its completion state. The
// caller partitions into done/undone sections itself.
func (e *Engine) ActiveTasksForDate(date time.Time) []models.TaskView {
	completed := e.ledger.Completed(date)
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	var views []models.TaskView
	for _, task := range e.tasks.List() {
		if !IsVisibleOn(task, date) || !IsActiveOn(task, date) {
			continue
		}
		views = append(views, models.TaskView{RoutineTask: task, Done: done[task.ID]})
	}
	return views
}

// UnfinishedActiveTasks returns the active tasks not yet marked done on the
// date. This is the surface the reminder scheduler consumes.
func (e *Engine) UnfinishedActiveTasks(date time.Time) []models.RoutineTask {
	var out []models.RoutineTask
	for _, v := range e.ActiveTasksForDate(date) {
		if !v.Done {
			out = append(out, v.RoutineTask)
		}
	}
	return out
}

// Toggle flips the completion state of one task for one date and returns the
// new state. The rate snapshot is recomputed against the number of tasks
// active on that date at toggle time; later task edits do not rewrite it.
// A task that is not active on the date is a no-op (ok=false): the ledger
// only ever holds ids of tasks that were active when marked, and this is
// where that invariant is enforced.
func (e *Engine) Toggle(date time.Time, taskID string) (done, ok bool) {
	views := e.ActiveTasksForDate(date)
	totalActive := len(views)

	for _, v := range views {
		if v.ID != taskID {
			continue
		}
		if v.Done {
			e.ledger.UnmarkComplete(date, taskID, totalActive)
			return false, true
		}
		e.ledger.MarkComplete(date, taskID, totalActive)
		return true, true
	}

	return false, false
}

// CompletedCounts returns, for each date, how many tasks were marked done.
// Feeds the weekly chart. Reads the ledger in one batch.
func (e *Engine) CompletedCounts(dates []time.Time) []int {
	sets := e.ledger.CompletedBatch(dates)
	counts := make([]int, len(dates))
	for i, ids := range sets {
		counts[i] = len(ids)
	}
	return counts
}

// DayStat is the calendar-mode aggregate for one date.
type DayStat struct {
	Date          time.Time
	HasCompletion bool
	Rate          float64
}

// CalendarStats returns per-date completion marks and rate snapshots for the
// monthly calendar. It reads the persisted snapshots directly and does not
// re-derive active-task sets, so a rate can be stale relative to current task
// definitions; that is the intended snapshot semantics.
func (e *Engine) CalendarStats(dates []time.Time) []DayStat {
	sets := e.ledger.CompletedBatch(dates)
	rates := e.ledger.RateBatch(dates)

	stats := make([]DayStat, len(dates))
	for i := range dates {
		stats[i] = DayStat{
			Date:          dates[i],
			HasCompletion: len(sets[i]) > 0,
			Rate:          rates[i],
		}
	}
	return stats
}
