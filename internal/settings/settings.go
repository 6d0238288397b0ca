// Package settings persists the user-tunable settings document.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/candyhq/candy/internal/constants"
	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/models"
	"github.com/candyhq/candy/internal/utils"
)

// Defaults returns the settings used before the user changes anything.
func Defaults() models.Settings {
	return models.Settings{
		Language:     constants.DefaultLanguage,
		ReminderTime: constants.DefaultReminderTime,
	}
}

// Get reads the persisted settings, falling back to defaults when absent.
func Get(store kv.Store) (models.Settings, error) {
	raw, found, err := store.Get(constants.SettingsKey)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}
	if !found {
		return Defaults(), nil
	}

	var s models.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Defaults(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.Language == "" {
		s.Language = constants.DefaultLanguage
	}
	if s.ReminderTime == "" {
		s.ReminderTime = constants.DefaultReminderTime
	}
	return s, nil
}

// Save validates and persists the settings document.
func Save(store kv.Store, s models.Settings) error {
	if s.Language != "en" && s.Language != "vi" {
		return fmt.Errorf("unsupported language: %s", s.Language)
	}
	if !utils.ValidClock(s.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", s.ReminderTime)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := store.Set(constants.SettingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}
