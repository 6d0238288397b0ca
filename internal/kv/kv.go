// Package kv defines the key-value persistence contract the stores and the
// completion ledger are written against, plus its file, SQLite, and Postgres
// implementations. Values are opaque strings (JSON documents or scalars).
package kv

// Item is one result of a MultiGet. Found distinguishes an absent key from an
// empty value.
type Item struct {
	Key   string
	Value string
	Found bool
}

type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key. found is false if the key was never set.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	// MultiGet fetches all keys in one underlying read and returns items in
	// the same order as keys. A missing key yields Found=false for that item
	// only; it never affects the others.
	MultiGet(keys []string) ([]Item, error)

	// ConfigPath returns the path or connection target backing the store.
	ConfigPath() string
}
