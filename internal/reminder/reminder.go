// Package reminder is the notification consumer of the query layer: it lists
// the day's unfinished active tasks and, in serve mode, re-emits that list on
// a daily cron schedule at the configured reminder time.
package reminder

import (
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/candyhq/candy/internal/logger"
	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/query"
	"github.com/candyhq/candy/internal/utils"
)

type Service struct {
	engine *query.Engine
	out    io.Writer
}

func New(engine *query.Engine, out io.Writer) *Service {
	return &Service{engine: engine, out: out}
}

// Due returns today's unfinished active tasks.
func (s *Service) Due(now time.Time) []models.RoutineTask {
	return s.engine.UnfinishedActiveTasks(now)
}

// Emit writes one reminder line per unfinished task. Tasks already marked
// done are skipped by the query layer.
func (s *Service) Emit(now time.Time) {
	due := s.Due(now)
	if len(due) == 0 {
		fmt.Fprintf(s.out, "Nothing left to do for %s 🎉\n", utils.DateKey(now))
		return
	}

	fmt.Fprintf(s.out, "Routine task reminder for %s:\n", utils.DateKey(now))
	for _, task := range due {
		icon := task.Icon
		if icon == "" {
			icon = "•"
		}
		fmt.Fprintf(s.out, "  %s %s\n", icon, task.Label)
	}
}

// Serve blocks, emitting reminders every day at reminderTime (HH:MM).
func (s *Service) Serve(reminderTime string) error {
	clock, err := utils.ParseClock(reminderTime)
	if err != nil {
		return fmt.Errorf("invalid reminder time %q: %w", reminderTime, err)
	}

	c := cron.New()
	expr := fmt.Sprintf("%d %d * * *", clock.Minute(), clock.Hour())
	if _, err := c.AddFunc(expr, func() { s.Emit(time.Now()) }); err != nil {
		return fmt.Errorf("failed to schedule reminder: %w", err)
	}

	logger.Info("Reminder scheduler started", "at", reminderTime)
	c.Run()
	return nil
}
