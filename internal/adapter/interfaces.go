// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the comms backend and the hosted generative-language API.
//
// The primary abstraction is [BackendClient], which decouples the session
// reconciler and the terminal UI from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPBackendClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// response messages by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrSchemaMissing] for the fatal
// missing-table condition, [ErrProfileNotFound] for an ordinary missing row).
package adapter

import (
	"context"

	"github.com/joms1025/company-management-app/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_client_mock.go -package=mock

// BackendClient defines transport-agnostic communication with the comms
// backend. Implementations are responsible for serialisation, bearer-token
// management, lifecycle event emission, and mapping transport-level errors
// to the sentinel values defined in this package.
type BackendClient interface {
	// Subscribe registers a handler for session lifecycle events. Events
	// are dispatched strictly one at a time, in emission order. The
	// returned func removes the subscription.
	Subscribe(handler func(AuthEvent)) (unsubscribe func())

	// CurrentSession returns the session the client currently holds, or
	// nil when signed out. The returned snapshot must not be mutated.
	CurrentSession() *models.Session

	// RestoreSession seeds the client with a previously persisted session
	// and emits the initial lifecycle event (with a nil session when none
	// was restored). Meant to be called exactly once at startup.
	RestoreSession(session *models.Session)

	// SignUp registers a new identity, passing the metadata the backend
	// uses to create the profile row. When the response carries a session
	// the client stores it and emits a signed-in event; otherwise the
	// account is confirmation-pending and no event fires.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)

	// SignInWithPassword verifies credentials. On success the client
	// stores the session and emits a signed-in event. Credential rejection
	// maps to [ErrInvalidCredentials], a pending confirmation to
	// [ErrEmailNotConfirmed].
	SignInWithPassword(ctx context.Context, email, password string) (models.AuthResponse, error)

	// SignOut revokes the session server-side. The local session is
	// dropped and a signed-out event is emitted even when the remote call
	// fails.
	SignOut(ctx context.Context) error

	// RefreshSession exchanges the refresh token for a fresh session and
	// emits a token-refreshed event.
	RefreshSession(ctx context.Context) (models.AuthResponse, error)

	// FindProfileByID fetches the profile row for the given subject.
	// Returns [ErrProfileNotFound] for a missing row and [ErrSchemaMissing]
	// when the backend reports the profiles table is absent.
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)

	// UpdateProfileRole sets the role on the profile row and returns the
	// updated row. Emits a user-updated event on success.
	UpdateProfileRole(ctx context.Context, id string, role models.Role) (models.Profile, error)

	// CreateTask stores a new department task.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// ListTasks returns tasks matching filter.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// UpdateTaskStatus moves a task to the given workflow state.
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error

	// PostMessage stores a chat message in the department group chat.
	PostMessage(ctx context.Context, department models.Department, req models.PostMessageRequest) (models.ChatMessage, error)

	// ListMessages returns department messages newer than after, oldest
	// first, capped at limit (0 = server default). Admin broadcasts are
	// folded into every department's history by the server.
	ListMessages(ctx context.Context, department models.Department, after string, limit int) ([]models.ChatMessage, error)
}

// TranscriptionClient processes a recorded voice note with the hosted
// generative-language API: transcription, language detection, English
// translation, and a short summary.
type TranscriptionClient interface {
	ProcessVoiceNote(ctx context.Context, audio []byte, mimeType string) (models.VoiceNoteData, error)
}
