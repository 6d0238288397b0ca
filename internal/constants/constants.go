package constants

const (
	AppName           = "candy"
	DefaultConfigPath = "~/.config/candy/candy.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys. The task collection, mood logs, and settings each live in a
	// single document; completion sets and rate snapshots are keyed per date.
	TaskCollectionKey      = "candy-storage"
	MoodCollectionKey      = "mood-storage"
	SettingsKey            = "settings-storage"
	FinishedKeyPrefix      = "RoutineTask:Finished:"
	FinishedRateKeyPrefix  = "RoutineTask:FinishedRate:"

	// Reminder defaults
	DefaultReminderTime = "08:00"
	DefaultLanguage     = "en"
)
