package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/joms1025/company-management-app/internal/logger"
)

// refreshTokenRepository is the PostgreSQL-backed implementation of
// [RefreshTokenRepository]. Tokens are opaque strings; revocation is a flag
// flip so that a consumed token can never be replayed.
type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRefreshTokenRepository constructs a [RefreshTokenRepository] backed by
// the provided database connection and logger.
func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, saveRefreshToken, token, userID, expiresAt); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	var userID string
	row := r.db.QueryRowContext(ctx, consumeRefreshToken, token)
	if err := row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRefreshTokenNotFound
		}
		log.Err(err).Str("func", "*refreshTokenRepository.ConsumeRefreshToken").Msg("error: scanning error")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}

func (r *refreshTokenRepository) RevokeUserTokens(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, revokeUserTokens, userID); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}
