package kv

import (
	"path/filepath"
	"testing"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "candy.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "candy.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runStoreContract(t *testing.T, store Store) {
	t.Helper()

	// Missing key
	_, found, err := store.Get("nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found {
		t.Error("expected missing key to report found=false")
	}

	// Set then get
	if err := store.Set("a", "1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, found, err := store.Get("a")
	if err != nil || !found {
		t.Fatalf("get after set failed: v=%q found=%v err=%v", v, found, err)
	}
	if v != "1" {
		t.Errorf("expected 1, got %q", v)
	}

	// Overwrite
	if err := store.Set("a", "2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _, _ = store.Get("a")
	if v != "2" {
		t.Errorf("expected overwritten value 2, got %q", v)
	}

	// Empty value is distinguishable from absence
	if err := store.Set("empty", ""); err != nil {
		t.Fatalf("set empty failed: %v", err)
	}
	v, found, _ = store.Get("empty")
	if !found || v != "" {
		t.Errorf("expected empty value with found=true, got %q found=%v", v, found)
	}

	// MultiGet preserves order and per-key independence
	if err := store.Set("b", "3"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	items, err := store.MultiGet([]string{"b", "missing", "a"})
	if err != nil {
		t.Fatalf("multiget failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Key != "b" || !items[0].Found || items[0].Value != "3" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Key != "missing" || items[1].Found {
		t.Errorf("missing key should be reported unfound: %+v", items[1])
	}
	if items[2].Key != "a" || !items[2].Found || items[2].Value != "2" {
		t.Errorf("unexpected third item: %+v", items[2])
	}

	// MultiGet with no keys
	items, err = store.MultiGet(nil)
	if err != nil {
		t.Fatalf("empty multiget failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestJSONStoreContract(t *testing.T) {
	runStoreContract(t, setupJSONStore(t))
}

func TestSQLiteStoreContract(t *testing.T) {
	runStoreContract(t, setupSQLiteStore(t))
}

func TestJSONStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candy.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	v, found, err := reopened.Get("k")
	if err != nil || !found || v != "v" {
		t.Errorf("expected persisted value, got v=%q found=%v err=%v", v, found, err)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candy.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected error on double init")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "candy.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestSQLiteStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candy.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	store.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	defer reopened.Close()

	v, found, err := reopened.Get("k")
	if err != nil || !found || v != "v" {
		t.Errorf("expected persisted value, got v=%q found=%v err=%v", v, found, err)
	}
}
