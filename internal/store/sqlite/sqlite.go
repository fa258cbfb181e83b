// Package sqlite persists store values in a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/simidle/simidle/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Preferences is a key/value table implementing store.Persistence
type Preferences struct {
	db *sql.DB
}

var _ store.Persistence = (*Preferences)(nil)

// Open opens (creating if needed) the database at path
func Open(path string) (*Preferences, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Preferences{db: db}, nil
}

// Close closes the database
func (p *Preferences) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

// Load returns the value stored under key, or store.ErrNotFound
func (p *Preferences) Load(key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preference %q: %w", key, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query preference: %w", err)
	}
	return value, nil
}

// Save upserts the value stored under key
func (p *Preferences) Save(key string, data []byte) error {
	return p.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value=excluded.value,
				updated_at=excluded.updated_at
		`, key, data, time.Now().Unix())
		if err != nil {
			return fmt.Errorf("failed to upsert preference: %w", err)
		}
		return nil
	})
}

func (p *Preferences) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
