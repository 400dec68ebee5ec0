package http

import (
	"errors"
	"net/http"

	"github.com/papyrus-labs/papyrusdb/internal/service"
	"github.com/papyrus-labs/papyrusdb/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrContentRequired:      http.StatusBadRequest,
	service.ErrCategoryNameRequired: http.StatusBadRequest,
	service.ErrNewNameRequired:      http.StatusBadRequest,
	service.ErrSessionRequired:      http.StatusBadRequest,

	service.ErrNoteNotFound:     http.StatusNotFound,
	service.ErrCategoryNotFound: http.StatusNotFound,

	service.ErrDeletedConflict: http.StatusConflict,
	service.ErrCategoryExists:  http.StatusConflict,

	store.ErrEmptyKey:                http.StatusInternalServerError,
	store.ErrInvalidCollectionValue:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrExecutingStatement:      http.StatusInternalServerError,
	store.ErrScanningRows:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
