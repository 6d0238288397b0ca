package models

type Settings struct {
	Language     string `json:"language"`     // "en" or "vi"
	ReminderTime string `json:"reminderTime"` // HH:MM
}
