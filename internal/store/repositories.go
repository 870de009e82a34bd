package store

import (
	"context"

	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
)

// Repositories aggregates every server-side repository behind one handle,
// created once at startup and shared by the service layer.
type Repositories struct {
	Accounts      AccountRepository
	Profiles      ProfileRepository
	Tasks         TaskRepository
	Chat          ChatRepository
	RefreshTokens RefreshTokenRepository

	db *DB
}

// NewRepositories connects to PostgreSQL and wires all repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Accounts:      NewAccountRepository(db, log),
		Profiles:      NewProfileRepository(db, log),
		Tasks:         NewTaskRepository(db, log),
		Chat:          NewChatRepository(db, log),
		RefreshTokens: NewRefreshTokenRepository(db, log),
		db:            db,
	}, nil
}

// DB exposes the raw handle for migrations.
func (r *Repositories) DB() *DB {
	return r.db
}

// Close releases the underlying database connection pool.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
