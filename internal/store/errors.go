package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBinAlreadyExists is returned by create-if-absent writes when a bin
	// with the same id is already stored.
	ErrBinAlreadyExists = errors.New("bin already exists")

	// ErrBinNotFound is returned when no bin is stored under the requested id.
	ErrBinNotFound = errors.New("bin was not found")

	// ErrKeyNotFound is returned by local storage reads of absent keys that
	// must exist.
	ErrKeyNotFound = errors.New("key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDialect is returned when a DSN names no known driver.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)
