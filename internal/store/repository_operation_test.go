package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/models"
)

func newTestOperationRepo(t *testing.T) (OperationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := NewOperationRepository(&DB{
		DB:          db,
		dialect:     "pgx",
		placeholder: sq.Dollar,
		classifier:  NewFailureClassifier(),
		logger:      l,
	}, l)
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testOperation() models.Operation {
	return models.Operation{
		ID:        uuid.MustParse("01928c5e-7a1b-7cde-8f00-000000000001"),
		Kind:      models.OperationEncrypt,
		Actor:     "alice",
		TraceID:   "trace-1",
		Signature: "0xabc",
		Count:     1,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestOperationRepository_Save_Success(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	op := testOperation()
	mock.ExpectExec("INSERT INTO operations").
		WithArgs(op.ID.String(), "encrypt", "alice", "trace-1", "0xabc", 1, op.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), op))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationRepository_Save_Errors(t *testing.T) {
	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{
			name:    "unique violation",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnError(pgError(pgerrcode.UniqueViolation)) },
			wantErr: ErrOperationExists,
		},
		{
			name:    "driver error",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("connection reset")) },
			wantErr: ErrExecutingStatement,
		},
		{
			name:    "nothing inserted",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) },
			wantErr: ErrOperationNotSaved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestOperationRepo(t)
			defer db.Close()

			tt.result(mock.ExpectExec("INSERT INTO operations"))

			err := repo.Save(context.Background(), testOperation())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOperationRepository_List(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	op := testOperation()
	rows := sqlmock.NewRows(operationColumns).
		AddRow(op.ID.String(), "encrypt", "alice", "trace-1", "0xabc", 1, op.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, kind, actor, trace_id, signature, count, created_at FROM operations WHERE kind = $1 AND actor = $2 ORDER BY created_at DESC, id DESC LIMIT 10`)).
		WithArgs("encrypt", "alice").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), models.OperationFilter{Kind: models.OperationEncrypt, Actor: "alice", Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, op, got[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationRepository_List_QueryError(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), models.OperationFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestOperationRepository_List_ScanError(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("x") // wrong shape
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.List(context.Background(), models.OperationFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestOperationRepository_List_BadID(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(operationColumns).
		AddRow("not-a-uuid", "encrypt", "alice", "", "", 1, time.Now())
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.List(context.Background(), models.OperationFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestOperationRepository_DeleteOlderThan(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM operations WHERE created_at < \$1`).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteOlderThan(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestOperationRepository_DeleteOlderThan_Error(t *testing.T) {
	repo, mock, db := newTestOperationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM operations").WillReturnError(errors.New("boom"))

	_, err := repo.DeleteOlderThan(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, normalizeLimit(0))
	assert.Equal(t, DefaultListLimit, normalizeLimit(-5))
	assert.Equal(t, 7, normalizeLimit(7))
	assert.Equal(t, MaxListLimit, normalizeLimit(MaxListLimit+1))
}

func TestBuildListOperationsQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildListOperationsQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question),
		models.OperationFilter{Actor: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, kind, actor, trace_id, signature, count, created_at FROM operations WHERE actor = ? ORDER BY created_at DESC, id DESC LIMIT 100", query)
	assert.Equal(t, []any{"bob"}, args)
}
