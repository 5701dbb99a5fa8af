// Package store persists picked colors: a bounded ring of recent picks and
// a set of named favorites, both in a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RecentLimit is how many recent picks are kept.
const RecentLimit = 16

// Store handles swatch persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the swatch database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hex TEXT NOT NULL,
		picked_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS favorites (
		name TEXT PRIMARY KEY,
		hex TEXT NOT NULL,
		saved_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AddRecent records a pick and trims the ring to RecentLimit.
func (s *Store) AddRecent(hex string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO recents (hex, picked_at) VALUES (?, ?)
	`, hex, time.Now()); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		DELETE FROM recents WHERE id NOT IN (
			SELECT id FROM recents ORDER BY id DESC LIMIT ?
		)
	`, RecentLimit); err != nil {
		return err
	}
	return tx.Commit()
}

// Recents returns the recent picks, newest first.
func (s *Store) Recents() ([]string, error) {
	rows, err := s.db.Query(`SELECT hex FROM recents ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var hex string
		if err := rows.Scan(&hex); err != nil {
			return nil, err
		}
		out = append(out, hex)
	}
	return out, rows.Err()
}

// Favorite is a named saved color.
type Favorite struct {
	Name    string
	Hex     string
	SavedAt time.Time
}

// SaveFavorite saves a color under a name, replacing any previous color
// with that name.
func (s *Store) SaveFavorite(name, hex string) error {
	_, err := s.db.Exec(`
		INSERT INTO favorites (name, hex, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET hex = excluded.hex, saved_at = excluded.saved_at
	`, name, hex, time.Now())
	return err
}

// Favorites returns all saved colors, newest first.
func (s *Store) Favorites() ([]Favorite, error) {
	rows, err := s.db.Query(`SELECT name, hex, saved_at FROM favorites ORDER BY saved_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.Name, &f.Hex, &f.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// DeleteFavorite removes a saved color by name.
func (s *Store) DeleteFavorite(name string) error {
	_, err := s.db.Exec(`DELETE FROM favorites WHERE name = ?`, name)
	return err
}
