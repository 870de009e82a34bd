package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

var ErrLocalSessionNotFound = errors.New("local session not found")

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionCache {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := l.DB.ExecContext(ctx, saveLocalSession,
		session.Subject,
		session.Email,
		session.AccessToken,
		session.RefreshToken,
		session.ExpiresAt,
	)
	if err != nil {
		l.logger.Err(err).
			Str("func", "*localSessionRepository.SaveSession").
			Str("subject", session.Subject).
			Msg("failed to persist session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := l.DB.QueryRowContext(ctx, getLocalSession)

	err := row.Scan(
		&session.Subject,
		&session.Email,
		&session.AccessToken,
		&session.RefreshToken,
		&session.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "*localSessionRepository.LoadSession").
			Msg("failed to load persisted session")
		return models.Session{}, fmt.Errorf("failed to load persisted session: %w", err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearLocalSession); err != nil {
		l.logger.Err(err).
			Str("func", "*localSessionRepository.ClearSession").
			Msg("failed to clear persisted session")
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	return nil
}
