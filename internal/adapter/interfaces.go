// Package adapter provides a Go client for the papyrusdb sync API.
//
// Device-side tooling (backup scripts, the installer's connectivity check)
// talks to a running server through [SyncClient] instead of hand-rolling
// HTTP calls. The HTTP implementation lives in this package; errors are
// mapped to the package's sentinel errors so callers can branch with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/papyrus-labs/papyrusdb/models"
)

// SyncClient is the device-side view of the sync API.
type SyncClient interface {
	// Status checks that the server is reachable and the configured key is
	// accepted.
	Status(ctx context.Context) (models.StatusResponse, error)

	// FetchAll returns the full store snapshot, tombstones included.
	FetchAll(ctx context.Context) (models.FetchAllResponse, error)

	// AddNote creates or updates a note.
	AddNote(ctx context.Context, req models.NoteUpsert) (models.UpsertResponse, error)
	// AddTask creates or updates a task.
	AddTask(ctx context.Context, req models.NoteUpsert) (models.UpsertResponse, error)
	// DeleteNote soft-deletes by default; forever requests physical removal.
	DeleteNote(ctx context.Context, id, session string, forever bool) (models.DeleteResponse, error)
	// DeleteTask is DeleteNote for the task route; both kinds share one keyspace.
	DeleteTask(ctx context.Context, id, session string, forever bool) (models.DeleteResponse, error)

	// AddCategory creates a category or reactivates a tombstone at the name.
	AddCategory(ctx context.Context, req models.CategoryUpsert) (models.UpsertResponse, error)
	// DeleteCategory soft-deletes by default; forever requests physical removal.
	DeleteCategory(ctx context.Context, name, session string, forever bool) (models.DeleteResponse, error)
	// RenameCategory renames a category and cascades the rename to its notes.
	RenameCategory(ctx context.Context, oldName, newName string) (models.MessageResponse, error)

	// DeleteAll performs the bulk logical wipe under the given session.
	DeleteAll(ctx context.Context, session string) (models.MessageResponse, error)
}
