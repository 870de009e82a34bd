package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/joms1025/company-management-app/internal/app"
	"github.com/joms1025/company-management-app/models"
)

// mapHTTPError translates a non-2xx backend response into a sentinel error.
//
// The backend writes its API errors as JSON {"message": "..."} with a fixed
// wording per condition; the message decides between errors sharing a status
// code (e.g. 401 invalid credentials vs 401 expired token) and detects the
// schema-missing case behind 503. The original body text is preserved in
// the wrap chain for logging.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	message := body
	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	switch message {
	case app.MsgInvalidLoginCredentials:
		return ErrInvalidCredentials
	case app.MsgEmailNotConfirmed:
		return ErrEmailNotConfirmed
	case app.MsgProfileNotFound:
		return ErrProfileNotFound
	case app.MsgProfilesRelationMissing:
		return fmt.Errorf("%w: %s", ErrSchemaMissing, message)
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusServiceUnavailable:
		// A 503 without the relation-missing wording is an ordinary outage.
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
