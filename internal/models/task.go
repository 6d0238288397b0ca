package models

import "time"

type RepeatType string

const (
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

type DayPart string

const (
	DayPartMorning   DayPart = "morning"
	DayPartAfternoon DayPart = "afternoon"
	DayPartEvening   DayPart = "evening"
)

// WeekdayTokens are the abbreviated weekday names used in RepeatValues,
// in time.Weekday order (Sunday first).
var WeekdayTokens = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayToken returns the abbreviated token for a weekday.
func WeekdayToken(wd time.Weekday) string {
	return WeekdayTokens[int(wd)]
}

// RoutineTask is a recurring habit definition. Records are never physically
// removed; deletion sets DeletedAt so historical queries stay correct.
type RoutineTask struct {
	ID           string     `json:"id"`
	Label        string     `json:"label"`
	IsFavorite   bool       `json:"isFavorite"`
	Color        string     `json:"color,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	DoItAt       DayPart    `json:"doItAt,omitempty"`
	Repeat       RepeatType `json:"repeat"`
	RepeatValues []string   `json:"repeatValues"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// RepeatsOn reports whether the task's weekday set contains the given token.
func (t RoutineTask) RepeatsOn(token string) bool {
	for _, v := range t.RepeatValues {
		if v == token {
			return true
		}
	}
	return false
}

// TaskUpdate carries the fields of a partial task update. Nil fields are
// left untouched by TaskStore.Update.
type TaskUpdate struct {
	Label        *string
	IsFavorite   *bool
	Color        *string
	Icon         *string
	DoItAt       *DayPart
	Repeat       *RepeatType
	RepeatValues []string
}

// TaskView is a routine task annotated with its completion state for one date.
type TaskView struct {
	RoutineTask
	Done bool
}
