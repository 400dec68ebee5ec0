package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/store"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

type noteService struct {
	entities store.EntityStore
	now      func() time.Time

	logger *logger.Logger
}

func NewNoteService(entities store.EntityStore, logger *logger.Logger) NoteService {
	return &noteService{
		entities: entities,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *noteService) Add(ctx context.Context, req models.NoteUpsert, asTask bool) (AddResult, error) {
	if !asTask && req.Content == nil {
		return AddResult{}, ErrContentRequired
	}

	id := req.ID
	if id == "" {
		id = utils.NewEntityID()
	}

	existing, found, err := s.readExisting(ctx, id)
	if err != nil {
		return AddResult{}, err
	}

	var record models.Note
	if found {
		record = mergeNote(existing, req)
	} else {
		record = noteFromUpsert(id, req, asTask)
	}
	record = models.NormalizeNote(record, s.now())

	if err = s.entities.Set(ctx, store.NoteKey(id), record); err != nil {
		return AddResult{}, fmt.Errorf("store note %q: %w", id, err)
	}
	if err = s.entities.SaveNow(ctx); err != nil {
		return AddResult{}, fmt.Errorf("flush note %q: %w", id, err)
	}

	s.logger.Info().Str("id", id).Bool("task", record.IsTask).Bool("created", !found).Msg("note upserted")

	return AddResult{ID: id, Created: !found}, nil
}

// readExisting loads the record at id and enforces the tombstone rule: an
// add against a soft-deleted note/task is a conflict, never a reactivation.
func (s *noteService) readExisting(ctx context.Context, id string) (models.Note, bool, error) {
	existing, found, err := readNote(ctx, s.entities, id)
	if err != nil {
		return models.Note{}, false, err
	}
	if found && existing.IsDeleted {
		return models.Note{}, false, fmt.Errorf("note %q: %w", id, ErrDeletedConflict)
	}
	return existing, found, nil
}

func (s *noteService) Delete(ctx context.Context, id, session string, forever bool) (DeleteResult, error) {
	record, found, err := readNote(ctx, s.entities, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if !found {
		return DeleteResult{}, fmt.Errorf("note %q: %w", id, ErrNoteNotFound)
	}

	if forever {
		if session != "" && record.DeleteSession != nil && session == *record.DeleteSession {
			s.logger.Info().Str("id", id).Str("session", session).Msg("permanent delete ignored, same session")
			return DeleteResult{Ignored: true}, nil
		}

		if err = s.entities.Delete(ctx, store.NoteKey(id)); err != nil {
			return DeleteResult{}, fmt.Errorf("delete note %q: %w", id, err)
		}
		if err = s.entities.SaveNow(ctx); err != nil {
			return DeleteResult{}, fmt.Errorf("flush delete of note %q: %w", id, err)
		}
		return DeleteResult{Mode: DeletePermanent}, nil
	}

	record.IsDeleted = true
	record.DeleteSession = optionalSession(session)

	if err = s.entities.Set(ctx, store.NoteKey(id), record); err != nil {
		return DeleteResult{}, fmt.Errorf("soft-delete note %q: %w", id, err)
	}
	if err = s.entities.SaveNow(ctx); err != nil {
		return DeleteResult{}, fmt.Errorf("flush soft-delete of note %q: %w", id, err)
	}

	return DeleteResult{Mode: DeleteSoft}, nil
}

func (s *noteService) GetAll(ctx context.Context) ([]models.Note, error) {
	records, err := readNotes(ctx, s.entities)
	if err != nil {
		return nil, err
	}

	now := s.now()
	notes := make([]models.Note, 0, len(records))
	for _, record := range records {
		notes = append(notes, models.NormalizeNote(record, now))
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	return notes, nil
}

// mergeNote applies the upsert payload over an existing active record.
// Omitted fields keep their stored values, except that an update which does
// not reassert protection loses it: protection must be reaffirmed on every
// write, so an omitted protected flag clears both it and the password.
func mergeNote(existing models.Note, req models.NoteUpsert) models.Note {
	merged := existing

	if req.Title != "" {
		merged.Title = req.Title
	}
	if req.Content != nil {
		merged.Content = *req.Content
	}
	if req.Timestamp != "" {
		merged.Timestamp = req.Timestamp
	}
	if req.Category != "" {
		merged.Category = req.Category
	}
	if req.Pinned != nil {
		merged.Pinned = *req.Pinned
	}

	if req.Protected == nil {
		merged.Protected = false
		merged.Password = nil
	} else {
		merged.Protected = *req.Protected
		if req.Password != nil {
			merged.Password = req.Password
		}
	}

	if req.Items != nil {
		merged.Items = req.Items
	}
	if req.Bg != "" {
		merged.Bg = req.Bg
	}

	return merged
}

func noteFromUpsert(id string, req models.NoteUpsert, asTask bool) models.Note {
	note := models.Note{
		ID:        id,
		Title:     req.Title,
		Timestamp: req.Timestamp,
		Category:  req.Category,
		Password:  req.Password,
		IsTask:    asTask,
		Items:     req.Items,
		Bg:        req.Bg,
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}
	if req.Protected != nil {
		note.Protected = *req.Protected
	}

	return note
}
