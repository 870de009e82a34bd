package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/joms1025/company-management-app/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, session issuance, and token parsing.
type AuthService interface {
	// SignUp registers a new identity and creates its profile row. The
	// returned response carries a session unless email confirmation is
	// required, in which case Session is nil.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)

	// SignIn verifies credentials and issues a fresh session.
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)

	// Refresh rotates the refresh token and issues a new session.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// SignOut revokes every live refresh token of the account.
	SignOut(ctx context.Context, userID string) error

	// ConfirmEmail marks the account as confirmed.
	ConfirmEmail(ctx context.Context, userID string) error

	// ParseToken validates a raw access token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and mutates profile rows on behalf of clients.
type ProfileService interface {
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (models.Profile, error)
}

// TaskService owns department task workflows.
type TaskService interface {
	CreateTask(ctx context.Context, creatorID string, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// ChatService owns department group chats.
type ChatService interface {
	// PostMessage stores a message authored by senderID in the given
	// department chat. The sender's display name is resolved from their
	// profile; broadcasting to DepartmentAll requires the Admin role.
	PostMessage(ctx context.Context, senderID string, department models.Department, req models.PostMessageRequest) (models.ChatMessage, error)

	// ListMessages returns department messages newer than after, oldest
	// first, capped at limit.
	ListMessages(ctx context.Context, department models.Department, after time.Time, limit int) ([]models.ChatMessage, error)
}
