package setindex

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"deckport/internal/scryfall"
)

const refreshedAtKey = "sets_refreshed_at"

// Store persists the Scryfall set list in a local SQLite cache.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the set cache database and applies
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// ReplaceAll swaps the cached set list for a fresh snapshot in one
// transaction and records the refresh time.
func (s *Store) ReplaceAll(ctx context.Context, sets []scryfall.Set, refreshedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sets"); err != nil {
		return fmt.Errorf("clear sets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sets (code, name, set_type, parent_set_code, released_at, card_count, digital)
         VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, set := range sets {
		digital := 0
		if set.Digital {
			digital = 1
		}
		if _, err := stmt.ExecContext(ctx,
			set.Code, set.Name, set.SetType, set.ParentSetCode,
			set.ReleasedAt, set.CardCount, digital,
		); err != nil {
			return fmt.Errorf("insert set %s: %w", set.Code, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cache_meta (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		refreshedAtKey, refreshedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("record refresh time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// All returns every cached set ordered by code.
func (s *Store) All(ctx context.Context) ([]scryfall.Set, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT code, name, set_type, parent_set_code, released_at, card_count, digital
         FROM sets ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var sets []scryfall.Set
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sets: %w", err)
	}
	return sets, nil
}

// RefreshedAt reports when the cache was last rebuilt. ok is false for an
// empty cache.
func (s *Store) RefreshedAt(ctx context.Context) (time.Time, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT value FROM cache_meta WHERE key = ?", refreshedAtKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("read refresh time: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse refresh time %q: %w", raw, err)
	}
	return parsed, true, nil
}

func scanSet(scanner interface{ Scan(dest ...any) error }) (scryfall.Set, error) {
	var (
		set     scryfall.Set
		digital int64
	)
	if err := scanner.Scan(
		&set.Code,
		&set.Name,
		&set.SetType,
		&set.ParentSetCode,
		&set.ReleasedAt,
		&set.CardCount,
		&digital,
	); err != nil {
		return scryfall.Set{}, err
	}
	set.Digital = digital != 0
	return set, nil
}
