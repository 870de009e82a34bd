package store

import (
	"context"
	"time"

	"github.com/joms1025/company-management-app/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionCache persists the authenticated session across client restarts so
// a cold start can resume without asking for credentials.
type SessionCache interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// MessageCache is the local chat history, kept so department chats render
// instantly and survive the backend being unreachable.
type MessageCache interface {
	SaveMessages(ctx context.Context, messages ...models.ChatMessage) error
	GetMessages(ctx context.Context, department models.Department, limit int) ([]models.ChatMessage, error)
	LatestTimestamp(ctx context.Context, department models.Department) (time.Time, error)
}
