package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/ledger"
	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/mood"
	"github.com/candyhq/candy/internal/query"
	"github.com/candyhq/candy/internal/taskstore"
	"github.com/candyhq/candy/internal/utils"
)

// Context carries the session-scoped stores, built once in main and passed to
// every command.
type Context struct {
	KV     kv.Store
	Tasks  *taskstore.Store
	Ledger *ledger.Ledger
	Moods  *mood.Store
	Engine *query.Engine
}

// LoadStores opens the key-value backend and hydrates the in-memory stores.
func (c *Context) LoadStores() error {
	if err := c.KV.Load(); err != nil {
		return err
	}
	if err := c.Tasks.Load(); err != nil {
		return err
	}
	return c.Moods.Load()
}

// ResolveDate turns an optional --date flag value into a day-truncated time,
// defaulting to today.
func ResolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return utils.DayOf(time.Now()), nil
	}
	date, err := utils.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", flag)
	}
	return date, nil
}

// ParseWeekdayTokens parses a comma-separated weekday list ("Mon,Wed,Fri",
// case-insensitive) into canonical tokens. "all" selects the whole week.
func ParseWeekdayTokens(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return append([]string(nil), models.WeekdayTokens...), nil
	}

	var tokens []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		matched := ""
		for _, token := range models.WeekdayTokens {
			if strings.EqualFold(part, token) || strings.EqualFold(part, fullWeekdayName(token)) {
				matched = token
				break
			}
		}
		if matched == "" {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}

		dup := false
		for _, t := range tokens {
			if t == matched {
				dup = true
				break
			}
		}
		if !dup {
			tokens = append(tokens, matched)
		}
	}

	return tokens, nil
}

func fullWeekdayName(token string) string {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if models.WeekdayToken(wd) == token {
			return wd.String()
		}
	}
	return token
}

// FormatRepeat renders a task's recurrence rule for list output.
func FormatRepeat(task models.RoutineTask) string {
	switch task.Repeat {
	case models.RepeatDaily:
		if len(task.RepeatValues) == 7 {
			return "daily"
		}
		if len(task.RepeatValues) == 0 {
			return "daily (no days)"
		}
		return "daily on " + strings.Join(task.RepeatValues, ",")
	case models.RepeatWeekly:
		return "weekly"
	case models.RepeatMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}
