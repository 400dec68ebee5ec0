package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/papyrus-labs/papyrusdb/internal/store"
	"github.com/papyrus-labs/papyrusdb/models"
)

// Typed read helpers over the raw key/value store. A nil raw value means the
// key is absent; backends report that as (nil, nil), never as an error.

func readNote(ctx context.Context, entities store.EntityStore, id string) (models.Note, bool, error) {
	raw, err := entities.Get(ctx, store.NoteKey(id))
	if err != nil {
		return models.Note{}, false, fmt.Errorf("read note %q: %w", id, err)
	}
	if raw == nil {
		return models.Note{}, false, nil
	}

	var note models.Note
	if err = json.Unmarshal(raw, &note); err != nil {
		return models.Note{}, false, fmt.Errorf("decode note %q: %w", id, err)
	}
	return note, true, nil
}

func readNotes(ctx context.Context, entities store.EntityStore) (map[string]models.Note, error) {
	raw, err := entities.Get(ctx, store.NotesCollection)
	if err != nil {
		return nil, fmt.Errorf("read notes collection: %w", err)
	}
	if raw == nil {
		return map[string]models.Note{}, nil
	}

	var notes map[string]models.Note
	if err = json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes collection: %w", err)
	}
	if notes == nil {
		notes = map[string]models.Note{}
	}
	return notes, nil
}

func readCategory(ctx context.Context, entities store.EntityStore, name string) (models.Category, bool, error) {
	raw, err := entities.Get(ctx, store.CategoryKey(name))
	if err != nil {
		return models.Category{}, false, fmt.Errorf("read category %q: %w", name, err)
	}
	if raw == nil {
		return models.Category{}, false, nil
	}

	var category models.Category
	if err = json.Unmarshal(raw, &category); err != nil {
		return models.Category{}, false, fmt.Errorf("decode category %q: %w", name, err)
	}
	return category, true, nil
}

func readCategories(ctx context.Context, entities store.EntityStore) (map[string]models.Category, error) {
	raw, err := entities.Get(ctx, store.CategoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("read categories collection: %w", err)
	}
	if raw == nil {
		return map[string]models.Category{}, nil
	}

	var categories map[string]models.Category
	if err = json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("decode categories collection: %w", err)
	}
	if categories == nil {
		categories = map[string]models.Category{}
	}
	return categories, nil
}

func optionalSession(session string) *string {
	if session == "" {
		return nil
	}
	return &session
}
