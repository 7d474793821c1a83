package store

import "errors"

// Sentinel errors returned by journal repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrOperationNotSaved is returned when an INSERT completes without error
	// but no row was affected.
	ErrOperationNotSaved = errors.New("operation was not saved")

	// ErrOperationExists is returned when an entry with the same ID is
	// already journaled.
	ErrOperationExists = errors.New("operation already exists")

	// ErrUnsupportedDSN is returned when the database URI scheme names
	// neither PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database uri")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow  = errors.New("failed to scan operation row")
	ErrScanningRows = errors.New("failed to scan operation rows")
)
