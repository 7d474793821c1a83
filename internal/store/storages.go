package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// Storages aggregates the persistence layer of the server.
type Storages struct {
	OperationRepository OperationRepository

	db *DB
}

// NewStorages picks the journal backend from the database URI:
//
//	""                      in-memory ring
//	postgres://, postgresql://  PostgreSQL
//	sqlite://<path>, file:<path> SQLite
//
// SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dsn := strings.TrimSpace(cfg.DB.DSN)
	if dsn == "" {
		log.Info().Int("capacity", cfg.JournalCapacity).Msg("no database configured, journal kept in memory")
		return &Storages{OperationRepository: NewMemoryOperationRepository(cfg.JournalCapacity)}, nil
	}

	db, err := connect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		OperationRepository: NewOperationRepository(db, log),
		db:                  db,
	}, nil
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
	}
}

// redact drops everything after the scheme so credentials never reach logs.
func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if i := strings.IndexByte(dsn, ':'); i >= 0 {
		return dsn[:i+1] + "..."
	}
	return "..."
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
