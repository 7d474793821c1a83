package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Failure tells the journal how to treat a failed statement.
type Failure int

const (
	// FailurePermanent is reported for anything not recognised below.
	FailurePermanent Failure = iota
	// FailureTransient covers lost connections, lock contention and
	// rolled back transactions. The entry may be written on a later attempt.
	FailureTransient
	// FailureConflict means an entry with the same id is already journaled.
	FailureConflict
)

func (f Failure) String() string {
	switch f {
	case FailureTransient:
		return "transient"
	case FailureConflict:
		return "conflict"
	default:
		return "permanent"
	}
}

// driverClassifier understands the errors of both journal drivers.
type driverClassifier struct{}

// NewFailureClassifier returns the [FailureClassifier] used by SQL journals.
func NewFailureClassifier() FailureClassifier {
	return driverClassifier{}
}

func (driverClassifier) Classify(err error) Failure {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr.Code)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return classifySQLite(liteErr)
	}

	return FailurePermanent
}

func classifyPostgres(code string) Failure {
	switch {
	case code == pgerrcode.UniqueViolation:
		return FailureConflict
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.LockNotAvailable:
		return FailureTransient
	}
	return FailurePermanent
}

func classifySQLite(err sqlite3.Error) Failure {
	switch err.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return FailureConflict
	}
	if err.Code == sqlite3.ErrBusy || err.Code == sqlite3.ErrLocked {
		return FailureTransient
	}
	return FailurePermanent
}
