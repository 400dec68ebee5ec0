package service

import "errors"

// Sentinel errors of the reconciliation engine. The HTTP layer maps them to
// status codes; match with [errors.Is].
var (
	ErrContentRequired = errors.New("note content is required")

	ErrNoteNotFound     = errors.New("note was not found")
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrDeletedConflict is returned when an add targets a note or task id
	// that is currently a tombstone. Updates must never resurrect a
	// tombstoned id: another device deleted it, and silently reviving it
	// would undo that delete. Categories deliberately behave differently
	// (add reactivates a tombstoned name).
	ErrDeletedConflict = errors.New("cannot update a deleted note")

	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryExists       = errors.New("an active category with this name already exists")
	ErrNewNameRequired      = errors.New("new category name is required")

	// ErrSessionRequired rejects a bulk wipe without a session token: an
	// unattributed wipe could never be idempotently retried.
	ErrSessionRequired = errors.New("session id is required")
)
