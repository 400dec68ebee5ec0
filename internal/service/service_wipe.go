package service

import (
	"context"
	"fmt"
	"time"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/store"
	"github.com/papyrus-labs/papyrusdb/models"
)

type wipeService struct {
	entities store.EntityStore
	now      func() time.Time

	logger *logger.Logger
}

func NewWipeService(entities store.EntityStore, logger *logger.Logger) WipeService {
	return &wipeService{
		entities: entities,
		now:      time.Now,
		logger:   logger,
	}
}

// DeleteAll tombstones every note/task without a password and every
// category, stamping each with the wiping session. A non-empty password
// string is the sole guard: a record with a password survives even when its
// protected flag is false, while a legacy record carrying an empty password
// string counts as unprotected. Everything is buffered and flushed once at
// the end.
func (s *wipeService) DeleteAll(ctx context.Context, session string) error {
	if session == "" {
		return ErrSessionRequired
	}

	now := s.now()

	notes, err := readNotes(ctx, s.entities)
	if err != nil {
		return err
	}
	wipedNotes := 0
	for id, note := range notes {
		if note.Password != nil && *note.Password != "" {
			continue
		}
		note.IsDeleted = true
		note.DeleteSession = &session
		if err = s.entities.Set(ctx, store.NoteKey(id), models.NormalizeNote(note, now)); err != nil {
			return fmt.Errorf("wipe note %q: %w", id, err)
		}
		wipedNotes++
	}

	categories, err := readCategories(ctx, s.entities)
	if err != nil {
		return err
	}
	for name, category := range categories {
		category.IsDeleted = true
		category.DeleteSession = &session
		if err = s.entities.Set(ctx, store.CategoryKey(name), models.NormalizeCategory(category)); err != nil {
			return fmt.Errorf("wipe category %q: %w", name, err)
		}
	}

	if err = s.entities.SaveNow(ctx); err != nil {
		return fmt.Errorf("flush bulk wipe: %w", err)
	}

	s.logger.Info().
		Str("session", session).
		Int("notes", wipedNotes).
		Int("categories", len(categories)).
		Msg("bulk logical wipe applied")

	return nil
}
