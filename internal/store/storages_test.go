package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/models"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{JournalCapacity: 5}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.OperationRepository)
	assert.NoError(t, s.Close())
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://root:secret@db/app"}}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
	assert.NotContains(t, err.Error(), "secret")
}

func TestNewStorages_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal", "ops.db")
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://" + path}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	repo := s.OperationRepository
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := op(models.OperationEncrypt, "alice", base)
	recent := op(models.OperationBatchEncrypt, "alice", base.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, old))
	require.NoError(t, repo.Save(ctx, recent))

	got, err := repo.List(ctx, models.OperationFilter{Actor: "alice"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recent.ID, got[0].ID)
	assert.True(t, recent.CreatedAt.Equal(got[0].CreatedAt))

	n, err := repo.DeleteOlderThan(ctx, base.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://...", redact("postgres://u:p@h/db"))
	assert.Equal(t, "file:...", redact("file:x.db"))
	assert.Equal(t, "...", redact("garbage"))
}

func TestFailureClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{"nil", nil, FailurePermanent},
		{"plain error", assert.AnError, FailurePermanent},
		{"pg unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, FailureConflict},
		{"pg deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, FailureTransient},
		{"pg connection lost", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, FailureTransient},
		{"pg wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), FailureTransient},
		{"pg syntax", &pgconn.PgError{Code: pgerrcode.SyntaxError}, FailurePermanent},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, FailureConflict},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, FailureTransient},
		{"sqlite readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, FailurePermanent},
	}

	c := NewFailureClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLite_DuplicateIDIsConflict(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "ops.db")}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	entry := op(models.OperationEncrypt, "bob", time.Now().UTC())
	require.NoError(t, s.OperationRepository.Save(ctx, entry))
	assert.ErrorIs(t, s.OperationRepository.Save(ctx, entry), ErrOperationExists)
}
