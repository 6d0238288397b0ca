package kv

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// PostgresStore backs the key space with a Postgres table, for users who keep
// their tracker data on a shared host. Selected when the config string starts
// with postgres:// or postgresql://.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// IsPostgresTarget reports whether the config string names a Postgres database.
func IsPostgresTarget(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	return s.ensureSchema()
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.ensureSchema()
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

func (s *PostgresStore) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM entries WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) Set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

func (s *PostgresStore) MultiGet(keys []string) ([]Item, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if len(keys) == 0 {
		return []Item{}, nil
	}

	rows, err := s.db.Query(
		"SELECT key, value FROM entries WHERE key = ANY($1)", pq.Array(keys))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		found[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(keys))
	for _, key := range keys {
		v, ok := found[key]
		items = append(items, Item{Key: key, Value: v, Found: ok})
	}
	return items, nil
}

func (s *PostgresStore) ConfigPath() string {
	return s.connStr
}
