package service

import (
	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/store"
)

type Services struct {
	Notes      NoteService
	Categories CategoryService
	Wipe       WipeService
}

func NewServices(entities store.EntityStore, logger *logger.Logger) *Services {
	return &Services{
		Notes:      NewNoteService(entities, logger),
		Categories: NewCategoryService(entities, logger),
		Wipe:       NewWipeService(entities, logger),
	}
}
