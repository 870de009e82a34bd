package service

import (
	"context"
	"fmt"

	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

// profileService is the concrete implementation of ProfileService.
//
// It deliberately passes repository sentinels through unchanged: the HTTP
// layer needs to tell store.ErrProfileNotFound apart from
// store.ErrRelationMissing, because clients treat the two very differently.
type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profiles,
		logger:            logger,
	}
}

// GetProfile returns the profile row keyed by the account UUID.
func (p *profileService) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := p.profileRepository.FindProfileByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile search by id failed")
		return models.Profile{}, fmt.Errorf("profile search by id failed: %w", err)
	}

	return profile, nil
}

// UpdateRole changes the role column of the profile and returns the updated
// row. Unknown roles are rejected with ErrInvalidRole before any repository
// call is made.
func (p *profileService) UpdateRole(ctx context.Context, id string, role models.Role) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}
	if !role.IsValid() {
		log.Error().Str("id", id).Str("role", string(role)).Msg("unknown role")
		return models.Profile{}, ErrInvalidRole
	}

	updated, err := p.profileRepository.UpdateProfileRole(ctx, id, role)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile role update failed")
		return models.Profile{}, fmt.Errorf("profile role update failed: %w", err)
	}

	return updated, nil
}
