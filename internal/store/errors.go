package store

import "errors"

// Sentinel errors returned by store backends. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEmptyKey is returned when an operation is given an empty key path.
	ErrEmptyKey = errors.New("empty store key")

	// ErrInvalidCollectionValue is returned by Set when a whole-collection
	// key is written with a value that is not a JSON object of records.
	ErrInvalidCollectionValue = errors.New("collection value is not an object of records")
)

// Low-level database operation errors used by the SQLite backend. These are
// wrapped around the driver error so the failing statement stays visible.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRows       = errors.New("failed to scan entity rows")
)
