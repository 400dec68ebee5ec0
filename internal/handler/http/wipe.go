package http

import (
	"net/http"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

// deleteAll performs the bulk logical wipe. Password-carrying records
// survive; everything else becomes a tombstone stamped with the caller's
// session.
func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session := r.URL.Query().Get("session")

	if err := h.services.Wipe.DeleteAll(r.Context(), session); err != nil {
		log.Err(err).Msg("error wiping store")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		OK:      true,
		Message: "unprotected notes and all categories marked deleted",
	}, http.StatusOK)
}
