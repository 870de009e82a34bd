package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/utils"
	"github.com/joms1025/company-management-app/models"
)

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	department := models.Department(chi.URLParam(r, "department"))

	saved, err := h.services.ChatService.PostMessage(ctx, userID, department, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

// listMessages answers the department chat history. The "after" query
// parameter (RFC 3339) restricts the window to newer messages; "limit" caps
// the page size.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	department := models.Department(chi.URLParam(r, "department"))

	var after time.Time
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Err(err).Str("after", raw).Msg("unparseable after parameter")
			http.Error(w, "after must be RFC 3339", http.StatusBadRequest)
			return
		}
		after = parsed
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	messages, err := h.services.ChatService.ListMessages(ctx, department, after, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}
