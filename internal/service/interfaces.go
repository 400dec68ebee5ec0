// Package service implements the reconciliation engine: the rules that let
// several devices create, edit, and delete the same logical notes, tasks,
// and categories without a central lock while converging to one state and
// never silently resurrecting deleted data.
package service

import (
	"context"

	"github.com/papyrus-labs/papyrusdb/models"
)

// Delete outcome modes.
const (
	DeleteSoft      = "soft"
	DeletePermanent = "permanent"
)

// AddResult reports an upsert: the (possibly synthesized) record id and
// whether the record was created rather than updated.
type AddResult struct {
	ID      string
	Created bool
}

// CategoryAddResult reports a category add; Reactivated is set when the add
// revived a tombstone at the same name.
type CategoryAddResult struct {
	Category    models.Category
	Reactivated bool
}

// DeleteResult reports a delete. Ignored is set when a permanent delete was
// suppressed as a same-session replay; Mode is empty in that case.
type DeleteResult struct {
	Mode    string
	Ignored bool
}

// NoteService reconciles note and task records. Both kinds share one
// keyspace and one lifecycle.
type NoteService interface {
	// Add creates or updates a note/task. Adding against a tombstoned id
	// fails with [ErrDeletedConflict].
	Add(ctx context.Context, req models.NoteUpsert, asTask bool) (AddResult, error)
	// Delete soft-deletes by default; forever requests physical removal,
	// which is suppressed when session matches the recorded delete session.
	Delete(ctx context.Context, id, session string, forever bool) (DeleteResult, error)
	// GetAll returns every record, tombstones included, normalized.
	GetAll(ctx context.Context) ([]models.Note, error)
}

// CategoryService reconciles category records, keyed by name.
type CategoryService interface {
	// Add creates a category or reactivates a tombstone at the same name,
	// preserving the stored id.
	Add(ctx context.Context, req models.CategoryUpsert) (CategoryAddResult, error)
	Delete(ctx context.Context, name, session string, forever bool) (DeleteResult, error)
	// Rename relocates the record to the new name's key and rewrites the
	// category field of every matching note/task.
	Rename(ctx context.Context, oldName, newName string) error
	GetAll(ctx context.Context) ([]models.Category, error)
	// BackfillIDs assigns ids to legacy category records that predate the id
	// field. Idempotent; flushes only when something changed. Returns the
	// number of records rewritten.
	BackfillIDs(ctx context.Context) (int, error)
}

// WipeService performs the bulk logical wipe.
type WipeService interface {
	// DeleteAll tombstones every password-less note/task and every category,
	// stamping the given session. Records carrying a password are skipped
	// unconditionally, whatever their protected flag says.
	DeleteAll(ctx context.Context, session string) error
}
