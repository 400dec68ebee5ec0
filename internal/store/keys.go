package store

import "strings"

// Collection names shared by every backend. Notes and tasks live in one
// keyspace; the record's isTask flag tags the variant.
const (
	NotesCollection      = "notes"
	CategoriesCollection = "categories"
)

// NoteKey returns the store key of a note or task record.
func NoteKey(id string) string {
	return NotesCollection + "/" + id
}

// CategoryKey returns the store key of a category record. Categories are
// keyed by name; a rename relocates the record to the new name's key.
func CategoryKey(name string) string {
	return CategoriesCollection + "/" + name
}

// splitKey breaks a key path into its collection and record id. The id is
// empty for whole-collection keys.
func splitKey(key string) (collection, id string) {
	collection, id, _ = strings.Cut(key, "/")
	return collection, id
}
