package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/migrations"
)

// DB is an open SQL connection together with the dialect details the query
// builders and migrations need.
type DB struct {
	*sql.DB

	// dialect is the goose dialect name ("pgx" or "sqlite3").
	dialect     string
	placeholder sq.PlaceholderFormat
	classifier  FailureClassifier
	logger      *logger.Logger
}

// Migrate applies the embedded journal migrations.
func (db *DB) Migrate(ctx context.Context) error {
	n, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}
	db.logger.Info().Str("dialect", db.dialect).Int("applied", n).Msg("journal schema is up to date")
	return nil
}

// builder returns a statement builder bound to the dialect's placeholders.
func (db *DB) builder() sq.StatementBuilderType {
	ph := db.placeholder
	if ph == nil {
		ph = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(ph)
}

func (db *DB) classify(err error) Failure {
	if db.classifier == nil {
		return FailurePermanent
	}
	return db.classifier.Classify(err)
}
