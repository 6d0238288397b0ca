package taskstore

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/models"
)

func setupStore(t *testing.T) (*Store, kv.Store) {
	t.Helper()
	backend := kv.NewJSONStore(filepath.Join(t.TempDir(), "candy.json"))
	if err := backend.Init(); err != nil {
		t.Fatalf("failed to init backend: %v", err)
	}
	store := New(backend)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store, backend
}

func newTask(id, label string) models.RoutineTask {
	return models.RoutineTask{
		ID:           id,
		Label:        label,
		Repeat:       models.RepeatDaily,
		RepeatValues: models.WeekdayTokens,
	}
}

func TestAddStampsTimestamps(t *testing.T) {
	store, _ := setupStore(t)

	before := time.Now()
	store.Add(newTask("t1", "Drink water"))

	task, ok := store.Get("t1")
	if !ok {
		t.Fatal("task not found after add")
	}
	if task.CreatedAt.Before(before) {
		t.Error("CreatedAt not stamped")
	}
	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Error("UpdatedAt should match CreatedAt on creation")
	}
	if task.DeletedAt != nil {
		t.Error("DeletedAt should start nil")
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(newTask("t1", "Read"))

	created, _ := store.Get("t1")

	label := "Read a book"
	fav := true
	store.Update("t1", models.TaskUpdate{Label: &label, IsFavorite: &fav})

	task, _ := store.Get("t1")
	if task.Label != "Read a book" {
		t.Errorf("expected merged label, got %q", task.Label)
	}
	if !task.IsFavorite {
		t.Error("expected favorite flag merged")
	}
	if len(task.RepeatValues) != 7 {
		t.Errorf("untouched field changed: %v", task.RepeatValues)
	}
	if task.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt not stamped on update")
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(newTask("t1", "Read"))

	label := "changed"
	store.Update("nope", models.TaskUpdate{Label: &label})

	task, _ := store.Get("t1")
	if task.Label != "Read" {
		t.Errorf("update of unknown id touched another record: %q", task.Label)
	}
}

func TestSoftDeleteKeepsRecord(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(newTask("t1", "Read"))

	store.SoftDelete("t1")

	task, ok := store.Get("t1")
	if !ok {
		t.Fatal("soft-deleted task must stay retrievable")
	}
	if task.DeletedAt == nil {
		t.Fatal("expected DeletedAt to be set")
	}

	// List includes deleted records; visibility filtering happens upstream.
	if got := len(store.List()); got != 1 {
		t.Errorf("expected 1 record in list, got %d", got)
	}

	// Deleting again or deleting an unknown id is a no-op.
	store.SoftDelete("nope")
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store, _ := setupStore(t)
	store.Add(newTask("a", "First"))
	store.Add(newTask("b", "Second"))
	store.Add(newTask("c", "Third"))

	tasks := store.List()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i, want := range []string{"a", "b", "c"} {
		if tasks[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, tasks[i].ID)
		}
	}
}

func TestCollectionPersistsAcrossLoads(t *testing.T) {
	backend := kv.NewJSONStore(filepath.Join(t.TempDir(), "candy.json"))
	if err := backend.Init(); err != nil {
		t.Fatalf("failed to init backend: %v", err)
	}

	store := New(backend)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	store.Add(newTask("t1", "Read"))
	store.SoftDelete("t1")

	reopened := New(backend)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	task, ok := reopened.Get("t1")
	if !ok {
		t.Fatal("task lost across reload")
	}
	if task.DeletedAt == nil {
		t.Error("deletion timestamp lost across reload")
	}
}

// failingStore simulates a broken key-value backend.
type failingStore struct{}

func (f *failingStore) Init() error  { return nil }
func (f *failingStore) Load() error  { return nil }
func (f *failingStore) Close() error { return nil }
func (f *failingStore) Get(key string) (string, bool, error) {
	return "", false, fmt.Errorf("backend down")
}
func (f *failingStore) Set(key, value string) error { return fmt.Errorf("backend down") }
func (f *failingStore) MultiGet(keys []string) ([]kv.Item, error) {
	return nil, fmt.Errorf("backend down")
}
func (f *failingStore) ConfigPath() string { return "broken" }

func TestPersistenceFailureKeepsSessionState(t *testing.T) {
	store := New(&failingStore{})
	if err := store.Load(); err != nil {
		t.Fatalf("load should degrade, not fail: %v", err)
	}

	// Writes are swallowed; the in-memory collection stays usable.
	store.Add(newTask("t1", "Read"))
	if _, ok := store.Get("t1"); !ok {
		t.Error("in-memory state lost on persistence failure")
	}
}
