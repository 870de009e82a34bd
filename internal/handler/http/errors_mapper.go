package http

import (
	"errors"
	"net/http"

	"github.com/joms1025/company-management-app/internal/app"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/service"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/internal/utils"
	"github.com/joms1025/company-management-app/models"
)

// apiError pairs the HTTP status with the exact message string written to
// the response body. Clients match on the message, so the wording must stay
// aligned with the app.Msg* constants.
type apiError struct {
	status  int
	message string
}

var errorResponseMap = map[error]apiError{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:  {http.StatusUnauthorized, app.MsgInvalidLoginCredentials},
	service.ErrEmailNotConfirmed:   {http.StatusForbidden, app.MsgEmailNotConfirmed},

	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrRefreshTokenInvalid:     {http.StatusUnauthorized, app.MsgRefreshTokenInvalid},

	service.ErrInvalidRole:         {http.StatusBadRequest, app.MsgInvalidRole},
	service.ErrInvalidDepartment:   {http.StatusBadRequest, app.MsgInvalidDepartment},
	service.ErrInvalidTaskStatus:   {http.StatusBadRequest, app.MsgInvalidTaskStatus},
	service.ErrForbiddenDepartment: {http.StatusForbidden, app.MsgForbiddenDepartment},

	store.ErrEmailAlreadyExists:   {http.StatusConflict, app.MsgEmailAlreadyRegistered},
	store.ErrAccountNotFound:      {http.StatusUnauthorized, app.MsgInvalidLoginCredentials},
	store.ErrProfileNotFound:      {http.StatusNotFound, app.MsgProfileNotFound},
	store.ErrRelationMissing:      {http.StatusServiceUnavailable, app.MsgProfilesRelationMissing},
	store.ErrTaskNotFound:         {http.StatusNotFound, app.MsgTaskNotFound},
	store.ErrRefreshTokenNotFound: {http.StatusUnauthorized, app.MsgRefreshTokenInvalid},
}

// writeError maps err to its API response and writes the uniform JSON error
// body. Unrecognised errors become a plain 500 so that internals never leak
// to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, response := range errorResponseMap {
		if errors.Is(err, target) {
			log.Err(err).Int("status", response.status).Msg(response.message)
			utils.WriteJSON(w, models.APIError{Message: response.message}, response.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteJSON(w, models.APIError{Message: app.MsgInternalServerError}, http.StatusInternalServerError)
}
