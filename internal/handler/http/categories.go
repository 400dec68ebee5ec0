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

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CategoryUpsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.Categories.Add(r.Context(), req)
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("error adding category")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	message := fmt.Sprintf("category %q added", result.Category.Name)
	if result.Reactivated {
		message = fmt.Sprintf("category %q reactivated", result.Category.Name)
	}

	_, _ = utils.WriteJSON(w, models.UpsertResponse{
		OK:      true,
		ID:      result.Category.ID,
		Message: message,
	}, http.StatusCreated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	query := r.URL.Query()
	session := query.Get("session")
	forever, _ := strconv.ParseBool(query.Get("deleteforever"))

	result, err := h.services.Categories.Delete(r.Context(), name, session, forever)
	if err != nil {
		log.Err(err).Str("name", name).Msg("error deleting category")
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

	message := fmt.Sprintf("category %q marked deleted", name)
	if result.Mode == service.DeletePermanent {
		message = fmt.Sprintf("category %q deleted", name)
	}

	_, _ = utils.WriteJSON(w, models.DeleteResponse{
		OK:      true,
		Deleted: result.Mode,
		Message: message,
	}, http.StatusOK)
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	oldName := chi.URLParam(r, "oldName")

	var req models.RenameCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Categories.Rename(r.Context(), oldName, req.NewName); err != nil {
		log.Err(err).Str("old_name", oldName).Str("new_name", req.NewName).Msg("error renaming category")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		OK:      true,
		Message: fmt.Sprintf("category %q renamed to %q, notes updated", oldName, req.NewName),
	}, http.StatusOK)
}
