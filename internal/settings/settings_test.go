package settings

import (
	"path/filepath"
	"testing"

	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/models"
)

func setupBackend(t *testing.T) kv.Store {
	t.Helper()
	backend := kv.NewJSONStore(filepath.Join(t.TempDir(), "candy.json"))
	if err := backend.Init(); err != nil {
		t.Fatalf("failed to init backend: %v", err)
	}
	return backend
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	backend := setupBackend(t)

	s, err := Get(backend)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if s != Defaults() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	backend := setupBackend(t)

	want := models.Settings{Language: "vi", ReminderTime: "21:30"}
	if err := Save(backend, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Get(backend)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSaveRejectsBadValues(t *testing.T) {
	backend := setupBackend(t)

	cases := []models.Settings{
		{Language: "fr", ReminderTime: "08:00"},
		{Language: "en", ReminderTime: "25:00"},
		{Language: "en", ReminderTime: "8am"},
		{Language: "", ReminderTime: "08:00"},
	}
	for _, s := range cases {
		if err := Save(backend, s); err == nil {
			t.Errorf("expected error for %+v", s)
		}
	}

	got, err := Get(backend)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != Defaults() {
		t.Errorf("rejected saves must not persist, got %+v", got)
	}
}

func TestGetBackfillsMissingFields(t *testing.T) {
	backend := setupBackend(t)
	if err := backend.Set("settings-storage", `{"language":"vi"}`); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := Get(backend)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Language != "vi" {
		t.Errorf("expected language vi, got %s", got.Language)
	}
	if got.ReminderTime != Defaults().ReminderTime {
		t.Errorf("expected default reminder time, got %s", got.ReminderTime)
	}
}
