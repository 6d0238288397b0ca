package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type document struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// JSONStore keeps the whole key space in one JSON file. Every Set rewrites
// the file, which is fine for the data volumes involved here.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Entries: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'candy init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Entries == nil {
		s.doc.Entries = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	v, ok := s.doc.Entries[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Entries[key] = value
	return s.save()
}

func (s *JSONStore) MultiGet(keys []string) ([]Item, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		v, ok := s.doc.Entries[key]
		items = append(items, Item{Key: key, Value: v, Found: ok})
	}
	return items, nil
}

func (s *JSONStore) ConfigPath() string {
	return s.path
}
