package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists trained agent snapshots in a sqlite database, keyed
// by agent name. The snapshot bytes are opaque to the store.
type Store struct {
	conn *sql.DB
}

// Open initializes the database connection and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}
	s := &Store{conn: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS agents (
		name TEXT PRIMARY KEY,
		episodes INTEGER NOT NULL,
		epsilon REAL NOT NULL,
		win_rate REAL NOT NULL,
		data BLOB NOT NULL,
		saved_at TEXT NOT NULL
	);`)
	return err
}

// ErrNotFound is returned when no snapshot exists under the name.
var ErrNotFound = errors.New("agent not found")

// Snapshot is one saved agent: the serialized policy plus training
// metadata.
type Snapshot struct {
	Name     string
	Episodes int
	Epsilon  float64
	WinRate  float64
	Data     []byte
	SavedAt  time.Time
}

// Save inserts or replaces the snapshot under its name.
func (s *Store) Save(snap Snapshot) error {
	_, err := s.conn.Exec(`
	INSERT INTO agents (name, episodes, epsilon, win_rate, data, saved_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		episodes = excluded.episodes,
		epsilon = excluded.epsilon,
		win_rate = excluded.win_rate,
		data = excluded.data,
		saved_at = excluded.saved_at;`,
		snap.Name, snap.Episodes, snap.Epsilon, snap.WinRate, snap.Data,
		snap.SavedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save agent %q: %w", snap.Name, err)
	}
	return nil
}

func (s *Store) Load(name string) (Snapshot, error) {
	row := s.conn.QueryRow(`
	SELECT name, episodes, epsilon, win_rate, data, saved_at
	FROM agents WHERE name = ?;`, name)

	var snap Snapshot
	var savedAt string
	if err := row.Scan(&snap.Name, &snap.Episodes, &snap.Epsilon, &snap.WinRate, &snap.Data, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return Snapshot{}, fmt.Errorf("failed to load agent %q: %w", name, err)
	}
	if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
		snap.SavedAt = t
	}
	return snap, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
