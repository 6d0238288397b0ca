package utils

import (
	"time"

	"github.com/candyhq/candy/internal/constants"
)

// DayOf truncates a time to midnight local time. All date comparisons in the
// query layer happen at day granularity, so time-of-day never leaks into them.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey formats a time as the YYYY-MM-DD key used by the ledger and mood log.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD string into a local-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// WeekDates returns the dates of the Monday-first week containing ref, from
// Monday through ref's own weekday. The weekly chart fills the remaining days
// of the week with zeros itself.
func WeekDates(ref time.Time) []time.Time {
	ref = DayOf(ref)
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}

	dates := make([]time.Time, 0, weekday)
	for i := 1; i <= weekday; i++ {
		dates = append(dates, ref.AddDate(0, 0, i-weekday))
	}
	return dates
}

// MonthDates returns every date of the month containing ref, in order.
func MonthDates(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	days := first.AddDate(0, 1, -1).Day()

	dates := make([]time.Time, 0, days)
	for d := 0; d < days; d++ {
		dates = append(dates, first.AddDate(0, 0, d))
	}
	return dates
}

// ParseClock parses an HH:MM string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, s)
}

// ValidClock reports whether s is a valid HH:MM string.
func ValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}
