package http

import (
	"net/http"

	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

// status answers the liveness probe. Reaching it at all means the presented
// server key was accepted, so the client treats this as "sync configured
// correctly".
func (h *Handler) status(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.StatusResponse{
		OK:      true,
		Message: "server is running",
	}, http.StatusOK)
}
