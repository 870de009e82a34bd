package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/utils"
	"github.com/joms1025/company-management-app/models"
)

// getProfile returns the profile row for the account UUID in the path.
//
// A missing row answers 404 with the profile-not-found message; a missing
// profiles table answers 503 with the exact relation-missing message, which
// clients use to tell a broken deployment apart from an unhydrated user.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.services.ProfileService.GetProfile(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.UpdateRole(ctx, chi.URLParam(r, "id"), request.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", updated.ID).Str("role", string(updated.Role)).Msg("profile role updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}
