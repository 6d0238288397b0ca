package utils

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 3, 10, 14, 35, 12, 99, time.Local)
	day := DayOf(ts)

	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 || day.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", day)
	}
	if day.Year() != 2025 || day.Month() != time.March || day.Day() != 10 {
		t.Errorf("date changed by truncation: %v", day)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	date, err := ParseDate("2025-08-27")
	if err != nil {
		t.Fatalf("failed to parse date: %v", err)
	}
	if DateKey(date) != "2025-08-27" {
		t.Errorf("expected 2025-08-27, got %s", DateKey(date))
	}

	if _, err := ParseDate("27/08/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestWeekDates(t *testing.T) {
	// 2025-08-27 is a Wednesday: Mon 25th through Wed 27th.
	wed, _ := ParseDate("2025-08-27")
	dates := WeekDates(wed)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if DateKey(dates[0]) != "2025-08-25" {
		t.Errorf("expected week to start on 2025-08-25, got %s", DateKey(dates[0]))
	}
	if DateKey(dates[2]) != "2025-08-27" {
		t.Errorf("expected week to end on reference date, got %s", DateKey(dates[2]))
	}
}

func TestWeekDatesSundayClosesWeek(t *testing.T) {
	// 2025-08-31 is a Sunday: full Mon..Sun week.
	sun, _ := ParseDate("2025-08-31")
	dates := WeekDates(sun)

	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if DateKey(dates[0]) != "2025-08-25" {
		t.Errorf("expected week to start on 2025-08-25, got %s", DateKey(dates[0]))
	}
	if DateKey(dates[6]) != "2025-08-31" {
		t.Errorf("expected Sunday last, got %s", DateKey(dates[6]))
	}
}

func TestMonthDates(t *testing.T) {
	ref, _ := ParseDate("2025-02-14")
	dates := MonthDates(ref)

	if len(dates) != 28 {
		t.Fatalf("expected 28 days in February 2025, got %d", len(dates))
	}
	if DateKey(dates[0]) != "2025-02-01" || DateKey(dates[27]) != "2025-02-28" {
		t.Errorf("unexpected month bounds: %s .. %s", DateKey(dates[0]), DateKey(dates[27]))
	}

	leap, _ := ParseDate("2024-02-01")
	if got := len(MonthDates(leap)); got != 29 {
		t.Errorf("expected 29 days in February 2024, got %d", got)
	}
}

func TestValidClock(t *testing.T) {
	if !ValidClock("08:00") {
		t.Error("expected 08:00 to be valid")
	}
	if ValidClock("8am") {
		t.Error("expected 8am to be invalid")
	}
}
