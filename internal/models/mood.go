package models

// MoodLabels maps a mood index (0 = best) to its display label.
var MoodLabels = []string{"Great", "Good", "Okay", "Not Good", "Bad"}

// MoodEmojis maps a mood index to its emoji glyph.
var MoodEmojis = []string{"😄", "🙂", "😐", "🙁", "😣"}

// MoodLog records one mood per calendar date.
type MoodLog struct {
	Date      string `json:"date"` // YYYY-MM-DD
	MoodIndex int    `json:"moodIndex"`
}

// ValidMoodIndex reports whether i is on the 0-4 ordinal scale.
func ValidMoodIndex(i int) bool {
	return i >= 0 && i < len(MoodLabels)
}
