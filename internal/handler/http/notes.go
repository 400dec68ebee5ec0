package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/papyrus-labs/papyrusdb/internal/logger"
	"github.com/papyrus-labs/papyrusdb/internal/service"
	"github.com/papyrus-labs/papyrusdb/internal/utils"
	"github.com/papyrus-labs/papyrusdb/models"
)

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	h.upsertNote(w, r, false)
}

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	h.upsertNote(w, r, true)
}

func (h *Handler) upsertNote(w http.ResponseWriter, r *http.Request, asTask bool) {
	log := logger.FromRequest(r)

	kind := "note"
	if asTask {
		kind = "task"
	}

	var req models.NoteUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("kind", kind).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.Notes.Add(r.Context(), req, asTask)
	if err != nil {
		log.Err(err).Str("kind", kind).Str("id", req.ID).Msg("error upserting record")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	message := fmt.Sprintf("%s %q updated", kind, result.ID)
	statusCode := http.StatusOK
	if result.Created {
		message = fmt.Sprintf("%s %q added", kind, result.ID)
		statusCode = http.StatusCreated
	}

	_, _ = utils.WriteJSON(w, models.UpsertResponse{
		OK:      true,
		ID:      result.ID,
		Message: message,
	}, statusCode)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	h.removeNote(w, r, "note")
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	h.removeNote(w, r, "task")
}

func (h *Handler) removeNote(w http.ResponseWriter, r *http.Request, kind string) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	query := r.URL.Query()
	session := query.Get("session")
	forever, _ := strconv.ParseBool(query.Get("deleteforever"))

	result, err := h.services.Notes.Delete(r.Context(), id, session, forever)
	if err != nil {
		log.Err(err).Str("kind", kind).Str("id", id).Msg("error deleting record")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	if result.Ignored {
		_, _ = utils.WriteJSON(w, models.DeleteResponse{
			OK:      true,
			Ignored: true,
			Reason:  "operation ignored (same session)",
		}, http.StatusOK)
		return
	}

	message := fmt.Sprintf("%s %q marked deleted", kind, id)
	if result.Mode == service.DeletePermanent {
		message = fmt.Sprintf("%s %q deleted", kind, id)
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{
		OK:      true,
		Deleted: result.Mode,
		Message: message,
	}, http.StatusOK)
}
