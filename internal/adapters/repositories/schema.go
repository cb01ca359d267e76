package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Dialect string

const (
	DialectSqlite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectSqlite, DialectPostgres:
		return Dialect(s), nil
	}
	return "", fmt.Errorf("unsupported database driver %q", s)
}

// Initialize the plans and place_cache schema for the given dialect.
func InitSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case DialectSqlite:
		statements = []string{
			`
			CREATE TABLE IF NOT EXISTS plans (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				trip_name TEXT NOT NULL,
				payload TEXT NOT NULL,
				created_at INTEGER NOT NULL
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_plans_user_created
			ON plans(user_id, created_at DESC);
			`,
			`
			CREATE TABLE IF NOT EXISTS place_cache (
				query TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				expires_at BIGINT NOT NULL
			);
			`,
		}
	case DialectPostgres:
		statements = []string{
			`
			CREATE TABLE IF NOT EXISTS plans (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				trip_name TEXT NOT NULL,
				payload JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			`,
			`
			CREATE INDEX IF NOT EXISTS idx_plans_user_created
			ON plans(user_id, created_at DESC);
			`,
			`
			CREATE TABLE IF NOT EXISTS place_cache (
				query TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				expires_at BIGINT NOT NULL
			);
			`,
		}
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
