package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when a query targets an entity
	// (identified by user_id, entity_type, local_id) that does not exist.
	ErrEntityNotFound = errors.New("sync entity was not found")

	// ErrEntityNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating nothing was
	// actually persisted.
	ErrEntityNotSaved = errors.New("sync entity was not saved")

	// ErrCheckpointNotFound is returned by the local store when no sync
	// checkpoint has been recorded yet (first sync of an installation).
	ErrCheckpointNotFound = errors.New("sync checkpoint was not found")

	// ErrOperationNotFound is returned when a queued sync operation id does
	// not exist in the local queue.
	ErrOperationNotFound = errors.New("sync operation was not found")

	// ErrTransientStorage wraps database failures the error classifier
	// deems retryable (connection loss, deadlock, serialization failure).
	// Callers keep the affected entity pending and retry with backoff
	// instead of reporting a per-entity error.
	ErrTransientStorage = errors.New("transient storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan entity row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan entity rows")
)
