// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joms1025/company-management-app/models"
)

func newTestClient(t *testing.T, serverURL string) *httpBackendClient {
	t.Helper()
	c := NewHTTPBackendClient(HTTPClientConfig{BaseURL: serverURL})
	return c.(*httpBackendClient)
}

func testSession(subject string) *models.Session {
	return &models.Session{
		Subject:      subject,
		Email:        subject + "@example.com",
		AccessToken:  "access-" + subject,
		RefreshToken: "refresh-" + subject,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func recordEvents(c *httpBackendClient) *[]AuthEvent {
	var events []AuthEvent
	c.Subscribe(func(e AuthEvent) { events = append(events, e) })
	return &events
}

func TestSignInWithPassword_Success(t *testing.T) {
	session := testSession("u1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signin", r.URL.Path)

		var req models.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Identity: models.Identity{ID: "u1", Email: "ann@example.com"},
			Session:  session,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events := recordEvents(c)

	got, err := c.SignInWithPassword(context.Background(), "ann@example.com", "secret")

	require.NoError(t, err)
	require.NotNil(t, got.Session)
	assert.Equal(t, "u1", got.Session.Subject)
	assert.Equal(t, session.AccessToken, c.CurrentSession().AccessToken)

	require.Len(t, *events, 1)
	assert.Equal(t, EventSignedIn, (*events)[0].Kind)
	assert.Equal(t, "u1", (*events)[0].Session.Subject)
}

func TestSignInWithPassword_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.APIError{Message: "invalid login credentials"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events := recordEvents(c)

	_, err := c.SignInWithPassword(context.Background(), "ann@example.com", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, c.CurrentSession())
	assert.Empty(t, *events)
}

func TestSignUp_ConfirmationPending_NoEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Identity: models.Identity{ID: "u2", Email: "new@x.com"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events := recordEvents(c)

	got, err := c.SignUp(context.Background(), models.SignUpRequest{Email: "new@x.com", Password: "secret"})

	require.NoError(t, err)
	assert.Nil(t, got.Session)
	assert.Nil(t, c.CurrentSession())
	assert.Empty(t, *events)
}

func TestSignUp_WithSession_EmitsSignedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Identity: models.Identity{ID: "u3", Email: "bob@example.com"},
			Session:  testSession("u3"),
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	events := recordEvents(c)

	_, err := c.SignUp(context.Background(), models.SignUpRequest{Email: "bob@example.com", Password: "secret"})

	require.NoError(t, err)
	require.NotNil(t, c.CurrentSession())
	require.Len(t, *events, 1)
	assert.Equal(t, EventSignedIn, (*events)[0].Kind)
}

func TestSignOut_LocalEffectSurvivesRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))
	events := recordEvents(c)

	err := c.SignOut(context.Background())

	require.Error(t, err)
	assert.Nil(t, c.CurrentSession())
	require.Len(t, *events, 1)
	assert.Equal(t, EventSignedOut, (*events)[0].Kind)
	assert.Nil(t, (*events)[0].Session)
}

func TestRefreshSession_RotatesAndEmits(t *testing.T) {
	rotated := testSession("u1")
	rotated.AccessToken = "access-rotated"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)

		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh-u1", req.RefreshToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Identity: models.Identity{ID: "u1"},
			Session:  rotated,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))
	events := recordEvents(c)

	_, err := c.RefreshSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "access-rotated", c.CurrentSession().AccessToken)
	require.Len(t, *events, 1)
	assert.Equal(t, EventTokenRefreshed, (*events)[0].Kind)
}

func TestRefreshSession_SignedOut(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0")

	_, err := c.RefreshSession(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRestoreSession_EmitsInitial(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0")
	events := recordEvents(c)

	c.RestoreSession(testSession("u1"))

	require.Len(t, *events, 1)
	assert.Equal(t, EventInitial, (*events)[0].Kind)
	require.NotNil(t, (*events)[0].Session)
	assert.Equal(t, "u1", (*events)[0].Session.Subject)
}

func TestRestoreSession_DropsExpired(t *testing.T) {
	expired := testSession("u1")
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	c := newTestClient(t, "http://127.0.0.1:0")
	events := recordEvents(c)

	c.RestoreSession(expired)

	assert.Nil(t, c.CurrentSession())
	require.Len(t, *events, 1)
	assert.Equal(t, EventInitial, (*events)[0].Kind)
	assert.Nil(t, (*events)[0].Session)
}

func TestFindProfileByID_SchemaMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profiles/u1", r.URL.Path)
		assert.Equal(t, "Bearer access-u1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.APIError{Message: `relation "profiles" does not exist`})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))

	_, err := c.FindProfileByID(context.Background(), "u1")

	require.ErrorIs(t, err, ErrSchemaMissing)
}

func TestFindProfileByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.APIError{Message: "profile not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))

	_, err := c.FindProfileByID(context.Background(), "missing")

	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProfileRole_EmitsUserUpdated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/profiles/u1/role", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Profile{ID: "u1", Role: models.RoleAdmin})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))
	events := recordEvents(c)

	profile, err := c.UpdateProfileRole(context.Background(), "u1", models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, profile.Role)
	require.Len(t, *events, 1)
	assert.Equal(t, EventUserUpdated, (*events)[0].Kind)
}

func TestListMessages_WindowParameters(t *testing.T) {
	after := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/Office/messages", r.URL.Path)
		assert.Equal(t, after, r.URL.Query().Get("after"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.ChatMessage{
			{ID: "m1", Department: models.DepartmentOffice, Type: models.MessageText, TextContent: "hello"},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))

	messages, err := c.ListMessages(context.Background(), models.DepartmentOffice, after, 50)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].TextContent)
}

func TestListTasks_FilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "Office", r.URL.Query().Get("department"))
		assert.Equal(t, "Pending", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{{ID: "t1", Title: "stock check"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.setSession(testSession("u1"))

	tasks, err := c.ListTasks(context.Background(), models.TaskFilter{
		Department: models.DepartmentOffice,
		Status:     models.TaskPending,
	})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "stock check", tasks[0].Title)
}
