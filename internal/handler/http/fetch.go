package http

import (
	"net/http"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

// getAll returns the full store snapshot, tombstones included. The client
// reconciles its local state against this view and decides what to show and
// what to purge.
func (h *Handler) getAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	notes, err := h.services.Notes.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("error fetching notes")
		writeError(w, "error fetching notes", statusFromError(err))
		return
	}

	categories, err := h.services.Categories.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("error fetching categories")
		writeError(w, "error fetching categories", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.FetchAllResponse{
		OK:         true,
		Notes:      notes,
		Categories: categories,
	}, http.StatusOK)
}
