package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a game document does not exist.
var ErrNotFound = errors.New("game not found")

// ErrVersionConflict is returned when a compare-and-swap update loses to a
// concurrent writer. Callers retry the whole read-transform-commit sequence
// from a fresh read.
var ErrVersionConflict = errors.New("version conflict")

// GameRow is one persisted game document with its commit version.
type GameRow struct {
	ID        string
	StateJSON string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store handles SQLite persistence. Each game is one JSON document guarded
// by an optimistic version counter; no partial updates are possible.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode for better concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			id         TEXT PRIMARY KEY,
			state_json TEXT NOT NULL,
			version    INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

// Create inserts a new game document at version 1.
func (s *Store) Create(id, stateJSON string) error {
	_, err := s.db.Exec(
		"INSERT INTO games (id, state_json, version) VALUES (?, ?, 1)",
		id, stateJSON,
	)
	return err
}

// Get retrieves a game document and its current version.
func (s *Store) Get(id string) (*GameRow, error) {
	row := s.db.QueryRow(
		"SELECT id, state_json, version, created_at, updated_at FROM games WHERE id = ?", id)
	var gr GameRow
	if err := row.Scan(&gr.ID, &gr.StateJSON, &gr.Version, &gr.CreatedAt, &gr.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &gr, nil
}

// Update replaces a game document if and only if its version still equals
// expectVersion, bumping the version. Returns ErrVersionConflict when an
// intervening write changed the document.
func (s *Store) Update(id, stateJSON string, expectVersion int64) error {
	res, err := s.db.Exec(`
		UPDATE games
		SET state_json = ?, version = version + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND version = ?
	`, stateJSON, id, expectVersion)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is gone or a concurrent writer bumped the version.
		if _, getErr := s.Get(id); getErr != nil {
			return getErr
		}
		return ErrVersionConflict
	}
	return nil
}

// Delete removes a game document.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE id = ?", id)
	return err
}

// List returns all game documents ordered by creation time, newest first.
func (s *Store) List() ([]GameRow, error) {
	rows, err := s.db.Query(
		"SELECT id, state_json, version, created_at, updated_at FROM games ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []GameRow
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.ID, &gr.StateJSON, &gr.Version, &gr.CreatedAt, &gr.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, gr)
	}
	return result, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
