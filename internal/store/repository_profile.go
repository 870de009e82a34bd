package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository], working against the "profiles" table.
//
// The undefined_table (42P01) driver code gets its own sentinel,
// [ErrRelationMissing]: clients must be able to tell a broken schema apart
// from an ordinary missing row, because the two drive completely different
// behavior (fatal takeover vs fallback user derivation).
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts the profile row for a freshly registered identity.
// The auth service calls this in the same flow that creates the account,
// standing in for the usual database trigger.
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProfile, profile.ID, profile.Name, profile.Email, profile.Role, profile.Department)

	var saved models.Profile
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Email, &saved.Role, &saved.Department, &saved.CreatedAt); err != nil {
		if mapped := mapProfileDriverError(err); mapped != nil {
			return models.Profile{}, mapped
		}
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindProfileByID retrieves the profile row keyed by the account UUID.
//
// Error handling:
//   - no rows → [ErrProfileNotFound]
//   - PostgreSQL undefined_table (42P01) → [ErrRelationMissing]
//   - anything else → wrapped as "unexpected DB error"
func (r *profileRepository) FindProfileByID(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var found models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByID, id)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Role, &found.Department, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		if mapped := mapProfileDriverError(err); mapped != nil {
			return models.Profile{}, mapped
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByID").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfileRole sets only the role column of the profile row and returns
// the updated row. A missing row maps to [ErrProfileNotFound].
func (r *profileRepository) UpdateProfileRole(ctx context.Context, id string, role models.Role) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var updated models.Profile
	row := r.db.QueryRowContext(ctx, updateProfileRole, id, role)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Role, &updated.Department, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		if mapped := mapProfileDriverError(err); mapped != nil {
			return models.Profile{}, mapped
		}
		log.Err(err).Str("func", "*profileRepository.UpdateProfileRole").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// mapProfileDriverError translates schema-level driver codes into sentinels.
// Returns nil when err carries no recognised code.
func mapProfileDriverError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %v", ErrRelationMissing, err)
	default:
		return nil
	}
}
