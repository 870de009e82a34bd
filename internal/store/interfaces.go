package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/joms1025/company-management-app/models"
)

// AccountRepository persists credential-bearing identities.
type AccountRepository interface {
	// CreateAccount inserts a new account row. Returns
	// [ErrEmailAlreadyExists] on a unique-constraint collision.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByEmail returns the account with the given email or
	// [ErrAccountNotFound].
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)

	// FindAccountByID returns the account with the given UUID or
	// [ErrAccountNotFound].
	FindAccountByID(ctx context.Context, id string) (models.Account, error)

	// ConfirmAccount marks the account's email as confirmed.
	ConfirmAccount(ctx context.Context, id string) error
}

// ProfileRepository persists the per-user profile rows consumed by clients.
//
// Implementations must distinguish a missing row ([ErrProfileNotFound]) from
// a missing table ([ErrRelationMissing]): the former is folded into fallback
// derivation on the client, the latter is a fatal configuration failure.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByID(ctx context.Context, id string) (models.Profile, error)
	UpdateProfileRole(ctx context.Context, id string, role models.Role) (models.Profile, error)
}

// TaskRepository persists department tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// ChatRepository persists department chat messages.
type ChatRepository interface {
	SaveMessage(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error)

	// ListMessages returns messages for department newer than after,
	// oldest first, capped at limit. A zero after returns the most recent
	// window of history.
	ListMessages(ctx context.Context, department models.Department, after time.Time, limit int) ([]models.ChatMessage, error)
}

// RefreshTokenRepository persists opaque refresh tokens.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error

	// ConsumeRefreshToken atomically revokes the token and returns the
	// owning account UUID. Unknown, revoked, or expired tokens yield
	// [ErrRefreshTokenNotFound].
	ConsumeRefreshToken(ctx context.Context, token string) (string, error)

	// RevokeUserTokens revokes every live refresh token of the account.
	RevokeUserTokens(ctx context.Context, userID string) error
}
