package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Bootstrap makes sure both top-level collections exist so that
// whole-collection reads always see an object, and flushes only when it had
// to create one.
func Bootstrap(ctx context.Context, s EntityStore) error {
	created := false

	for _, collection := range []string{NotesCollection, CategoriesCollection} {
		found, err := s.Has(ctx, collection)
		if err != nil {
			return fmt.Errorf("check collection %q: %w", collection, err)
		}
		if found {
			continue
		}

		if err = s.Set(ctx, collection, map[string]json.RawMessage{}); err != nil {
			return fmt.Errorf("create collection %q: %w", collection, err)
		}
		created = true
	}

	if !created {
		return nil
	}
	return s.SaveNow(ctx)
}
