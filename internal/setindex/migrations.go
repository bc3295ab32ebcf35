package setindex

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/0001_sets.sql
var setsSchemaSQL string

// schemaMigrations lists every schema step in order. The cache file records
// how many have run in PRAGMA user_version, so a reopened cache only
// applies the tail it is missing.
var schemaMigrations = []string{
	setsSchemaSQL,
}

func (s *Store) applyMigrations(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version >= len(schemaMigrations) {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i := version; i < len(schemaMigrations); i++ {
		if _, err := tx.ExecContext(ctx, schemaMigrations[i]); err != nil {
			return fmt.Errorf("apply schema step %d: %w", i+1, err)
		}
	}

	// PRAGMA takes no placeholders; the value is a trusted constant.
	stmt := fmt.Sprintf("PRAGMA user_version = %d", len(schemaMigrations))
	if _, err := tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}
