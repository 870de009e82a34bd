package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joms1025/company-management-app/internal/app"
	"github.com/joms1025/company-management-app/internal/service"
	"github.com/joms1025/company-management-app/models"
)

func TestHandler_PostMessage_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	th.expectAuthenticated("u1")
	th.chat.EXPECT().PostMessage(gomock.Any(), "u1", models.DepartmentLS, gomock.Any()).
		DoAndReturn(func(_ any, _ string, _ models.Department, req models.PostMessageRequest) (models.ChatMessage, error) {
			assert.Equal(t, models.MessageText, req.Type)
			return models.ChatMessage{ID: "m1", Department: models.DepartmentLS}, nil
		})

	body := jsonBody(t, models.PostMessageRequest{Type: models.MessageText, TextContent: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat/LS/messages", strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken)
	rr := httptest.NewRecorder()

	th.handler.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
}

// Department names with spaces arrive percent-encoded in the path and must
// reach the service decoded.
func TestHandler_PostMessage_EncodedDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	th.expectAuthenticated("boss")
	th.chat.EXPECT().PostMessage(gomock.Any(), "boss", models.DepartmentAll, gomock.Any()).
		Return(models.ChatMessage{ID: "m1"}, nil)

	body := jsonBody(t, models.PostMessageRequest{Type: models.MessageText, TextContent: "all hands"})
	target := "/api/chat/" + url.PathEscape(string(models.DepartmentAll)) + "/messages"
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken)
	rr := httptest.NewRecorder()

	th.handler.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandler_PostMessage_ForbiddenDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	th.expectAuthenticated("u1")
	th.chat.EXPECT().PostMessage(gomock.Any(), "u1", models.DepartmentHouse, gomock.Any()).
		Return(models.ChatMessage{}, service.ErrForbiddenDepartment)

	body := jsonBody(t, models.PostMessageRequest{Type: models.MessageText, TextContent: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat/House/messages", strings.NewReader(body))
	req.Header.Set("Authorization", bearerToken)
	rr := httptest.NewRecorder()

	th.handler.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, app.MsgForbiddenDepartment, decodeAPIError(t, rr).Message)
}

func TestHandler_ListMessages_WindowParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	th.expectAuthenticated("u1")

	after := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	th.chat.EXPECT().ListMessages(gomock.Any(), models.DepartmentOffice, after, 10).
		Return([]models.ChatMessage{{ID: "m1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/Office/messages?after=2026-03-01T12:00:00Z&limit=10", nil)
	req.Header.Set("Authorization", bearerToken)
	rr := httptest.NewRecorder()

	th.handler.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&messages))
	assert.Len(t, messages, 1)
}

func TestHandler_ListMessages_BadAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	th := newTestHandler(t, ctrl)
	th.expectAuthenticated("u1")

	req := httptest.NewRequest(http.MethodGet, "/api/chat/Office/messages?after=yesterday", nil)
	req.Header.Set("Authorization", bearerToken)
	rr := httptest.NewRecorder()

	th.handler.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
