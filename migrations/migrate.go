// Package migrations embeds the goose migrations of the operation journal.
// The SQL is kept portable so that PostgreSQL and SQLite share one set.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned by [Migrate] when no connection is given.
	ErrNilDB = errors.New("migration error: db is nil")
	// ErrUnknownDialect is returned for a driver without a goose dialect.
	ErrUnknownDialect = errors.New("migration error: unknown dialect")
)

// dialects maps database/sql driver names to goose dialects.
var dialects = map[string]goose.Dialect{
	"pgx":     goose.DialectPostgres,
	"sqlite3": goose.DialectSQLite3,
}

// Migrate brings db up to the latest journal schema and reports how many
// migrations were applied. driver is the database/sql driver name.
func Migrate(ctx context.Context, db *sql.DB, driver string) (int, error) {
	if db == nil {
		return 0, ErrNilDB
	}
	dialect, ok := dialects[driver]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, driver)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("migration error: %w", err)
	}
	return len(results), nil
}
