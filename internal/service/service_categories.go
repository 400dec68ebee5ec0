package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/store"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

type categoryService struct {
	entities store.EntityStore
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCategoryService(entities store.EntityStore, logger *logger.Logger) CategoryService {
	return &categoryService{
		entities: entities,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (s *categoryService) Add(ctx context.Context, req models.CategoryUpsert) (CategoryAddResult, error) {
	if req.Name == "" {
		return CategoryAddResult{}, ErrCategoryNameRequired
	}

	existing, found, err := readCategory(ctx, s.entities, req.Name)
	if err != nil {
		return CategoryAddResult{}, err
	}
	if found && !existing.IsDeleted {
		return CategoryAddResult{}, fmt.Errorf("category %q: %w", req.Name, ErrCategoryExists)
	}

	category := models.Category{
		ID:          req.ID,
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		UserDefined: req.UserDefined == nil || *req.UserDefined,
	}
	if category.ID == "" {
		category.ID = s.ids.Generate()
	}

	reactivated := found && existing.IsDeleted
	if reactivated {
		// Categories, unlike notes, are revived by an add at their name.
		// The id was assigned once and survives the tombstone round-trip.
		category.ID = existing.ID
		category.IsDeleted = false
		category.DeleteSession = nil
		s.logger.Info().Str("name", req.Name).Msg("category reactivated")
	}

	category = models.NormalizeCategory(category)

	if err = s.entities.Set(ctx, store.CategoryKey(req.Name), category); err != nil {
		return CategoryAddResult{}, fmt.Errorf("store category %q: %w", req.Name, err)
	}
	if err = s.entities.SaveNow(ctx); err != nil {
		return CategoryAddResult{}, fmt.Errorf("flush category %q: %w", req.Name, err)
	}

	return CategoryAddResult{Category: category, Reactivated: reactivated}, nil
}

func (s *categoryService) Delete(ctx context.Context, name, session string, forever bool) (DeleteResult, error) {
	record, found, err := readCategory(ctx, s.entities, name)
	if err != nil {
		return DeleteResult{}, err
	}
	if !found {
		return DeleteResult{}, fmt.Errorf("category %q: %w", name, ErrCategoryNotFound)
	}

	if forever {
		if session != "" && record.DeleteSession != nil && session == *record.DeleteSession {
			s.logger.Info().Str("name", name).Str("session", session).Msg("permanent delete ignored, same session")
			return DeleteResult{Ignored: true}, nil
		}

		if err = s.entities.Delete(ctx, store.CategoryKey(name)); err != nil {
			return DeleteResult{}, fmt.Errorf("delete category %q: %w", name, err)
		}
		if err = s.entities.SaveNow(ctx); err != nil {
			return DeleteResult{}, fmt.Errorf("flush delete of category %q: %w", name, err)
		}
		return DeleteResult{Mode: DeletePermanent}, nil
	}

	record.IsDeleted = true
	record.DeleteSession = optionalSession(session)

	if err = s.entities.Set(ctx, store.CategoryKey(name), record); err != nil {
		return DeleteResult{}, fmt.Errorf("soft-delete category %q: %w", name, err)
	}
	if err = s.entities.SaveNow(ctx); err != nil {
		return DeleteResult{}, fmt.Errorf("flush soft-delete of category %q: %w", name, err)
	}

	return DeleteResult{Mode: DeleteSoft}, nil
}

// Rename relocates the record from the old name's key to the new one and
// rewrites every note/task still pointing at the old name. All writes are
// buffered and flushed once; a crash mid-cascade can leave notes pointing at
// a name without a category record. That gap is accepted for compatibility
// with the original protocol.
func (s *categoryService) Rename(ctx context.Context, oldName, newName string) error {
	record, found, err := readCategory(ctx, s.entities, oldName)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("category %q: %w", oldName, ErrCategoryNotFound)
	}
	if newName == "" {
		return ErrNewNameRequired
	}

	target, found, err := readCategory(ctx, s.entities, newName)
	if err != nil {
		return err
	}
	if found && !target.IsDeleted {
		return fmt.Errorf("category %q: %w", newName, ErrCategoryExists)
	}

	renamed := record
	renamed.Name = newName

	if err = s.entities.Delete(ctx, store.CategoryKey(oldName)); err != nil {
		return fmt.Errorf("delete old category key %q: %w", oldName, err)
	}
	if err = s.entities.Set(ctx, store.CategoryKey(newName), renamed); err != nil {
		return fmt.Errorf("store renamed category %q: %w", newName, err)
	}

	notes, err := readNotes(ctx, s.entities)
	if err != nil {
		return err
	}
	rewritten := 0
	for id, note := range notes {
		if note.Category != oldName {
			continue
		}
		note.Category = newName
		if err = s.entities.Set(ctx, store.NoteKey(id), note); err != nil {
			return fmt.Errorf("rewrite note %q category: %w", id, err)
		}
		rewritten++
	}

	if err = s.entities.SaveNow(ctx); err != nil {
		return fmt.Errorf("flush rename of category %q: %w", oldName, err)
	}

	s.logger.Info().Str("from", oldName).Str("to", newName).Int("notes", rewritten).Msg("category renamed")
	return nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	records, err := readCategories(ctx, s.entities)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(records))
	for _, record := range records {
		categories = append(categories, models.NormalizeCategory(record))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	return categories, nil
}

// BackfillIDs is the startup migration: category records written before the
// id field existed get one assigned in place. Runs once per process start
// and is a no-op when every record already carries an id.
func (s *categoryService) BackfillIDs(ctx context.Context) (int, error) {
	records, err := readCategories(ctx, s.entities)
	if err != nil {
		return 0, err
	}

	changed := 0
	for name, record := range records {
		if record.ID != "" {
			continue
		}

		record.ID = s.ids.Generate()
		if err = s.entities.Set(ctx, store.CategoryKey(name), record); err != nil {
			return changed, fmt.Errorf("backfill category %q: %w", name, err)
		}
		changed++
	}

	if changed == 0 {
		return 0, nil
	}
	if err = s.entities.SaveNow(ctx); err != nil {
		return changed, fmt.Errorf("flush category id backfill: %w", err)
	}

	s.logger.Info().Int("categories", changed).Msg("backfilled missing category ids")
	return changed, nil
}
