package store

import "errors"

// Sentinel errors returned by the Device Key Cache implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned by Put when the key is empty.
	ErrEmptyKey = errors.New("device key must not be empty")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when reading a single result row fails.
	ErrScanningRow = errors.New("failed to scan device key row")
)
