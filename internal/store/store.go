package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the durable key/value storage behind user preferences.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	return errors.Join(errs...)
}

// Get returns the stored value for key; ok is false when the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if _, err := s.writeDB.Exec("DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// All returns every stored preference.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.readDB.Query("SELECT key, value FROM prefs ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("querying prefs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning pref: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Stats returns the number of stored keys and the database file size.
func (s *Store) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM prefs").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting prefs: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return count, info.Size(), nil
}

func (s *Store) setMeta(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *Store) getMeta(key string) (string, error) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	return value, err
}

func (s *Store) SetLastOpened() error {
	return s.setMeta("last_opened", time.Now().Format(time.RFC3339))
}

func (s *Store) GetLastOpened() (time.Time, error) {
	v, err := s.getMeta("last_opened")
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}
