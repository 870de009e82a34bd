// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/internal/utils"
	"github.com/joms1025/company-management-app/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the session token
// lifecycle: short-lived JWT access tokens signed with HMAC-SHA256 plus
// opaque single-use refresh tokens persisted server-side.
type authService struct {
	// accountRepository is the data-access layer for credential identities.
	accountRepository store.AccountRepository

	// profileRepository creates the profile row in the same registration
	// flow that creates the account, standing in for a database trigger.
	profileRepository store.ProfileRepository

	// refreshTokenRepository persists and rotates opaque refresh tokens.
	refreshTokenRepository store.RefreshTokenRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// refreshDuration controls how long a refresh token remains exchangeable.
	refreshDuration time.Duration

	// requireConfirmation gates sign-in on email confirmation. When set,
	// sign-up issues an identity without a session.
	requireConfirmation bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accounts store.AccountRepository, profiles store.ProfileRepository, refreshTokens store.RefreshTokenRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository:      accounts,
		profileRepository:      profiles,
		refreshTokenRepository: refreshTokens,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		refreshDuration:        cfg.RefreshDuration,
		requireConfirmation:    cfg.RequireConfirmation,
		logger:                 logger,
	}
}

// SignUp registers a new identity.
//
// It validates the credentials, hashes the password with bcrypt, creates the
// account row, and creates the matching profile row populated from the
// request metadata. Metadata gaps are filled with defaults: the display name
// falls back to the email local part, the role to User, the department to
// the default department.
//
// Returns the identity (with a session attached unless confirmation is
// required) or:
//   - ErrInvalidDataProvided if Email or Password is empty, or metadata
//     carries an unknown role or department.
//   - A wrapped storage error if persistence fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}
	if req.Metadata.Role != "" && !req.Metadata.Role.IsValid() {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidRole)
	}
	if req.Metadata.Department != "" && !req.Metadata.Department.IsAssignable() {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrInvalidDepartment)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(req.Email),
		PasswordHash:   string(passwordHash),
		EmailConfirmed: !a.requireConfirmation,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("account creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	if _, err := a.profileRepository.CreateProfile(ctx, newProfileForAccount(account, req.Metadata)); err != nil {
		log.Err(err).Str("id", account.ID).Msg("profile creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	response := models.AuthResponse{Identity: identityOf(account)}
	if a.requireConfirmation {
		// Confirmation pending: the caller gets an identity but no session.
		return response, nil
	}

	session, err := a.issueSession(ctx, account)
	if err != nil {
		return models.AuthResponse{}, err
	}
	response.Session = session

	return response, nil
}

// SignIn authenticates an existing account.
//
// Both an unknown email and a wrong password are reported as
// ErrInvalidCredentials so that callers cannot probe which emails are
// registered.
//
// Returns the identity with a fresh session or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password wrong.
//   - ErrEmailNotConfirmed if confirmation is required and pending.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid sign-in data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("account search by email failed")
		return models.AuthResponse{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().Str("id", account.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	if a.requireConfirmation && !account.EmailConfirmed {
		return models.AuthResponse{}, ErrEmailNotConfirmed
	}

	session, err := a.issueSession(ctx, account)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Identity: identityOf(account), Session: session}, nil
}

// Refresh exchanges a refresh token for a fresh session.
//
// Refresh tokens are single-use: the presented token is revoked atomically
// while the owning account is resolved, and a new token is issued with the
// session. Unknown, expired, or already-revoked tokens yield
// ErrRefreshTokenInvalid.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	userID, err := a.refreshTokenRepository.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrRefreshTokenNotFound) {
			return models.AuthResponse{}, ErrRefreshTokenInvalid
		}
		log.Err(err).Str("func", "*authService.Refresh").Msg("refresh token consumption failed")
		return models.AuthResponse{}, fmt.Errorf("refresh token consumption failed: %w", err)
	}

	account, err := a.accountRepository.FindAccountByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("account search by id failed")
		return models.AuthResponse{}, fmt.Errorf("account search by id failed: %w", err)
	}

	session, err := a.issueSession(ctx, account)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Identity: identityOf(account), Session: session}, nil
}

// SignOut revokes every live refresh token of the account. Already-issued
// access tokens stay valid until they expire; only the refresh path is cut.
func (a *authService) SignOut(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := a.refreshTokenRepository.RevokeUserTokens(ctx, userID); err != nil {
		log.Err(err).Str("id", userID).Msg("refresh token revocation failed")
		return fmt.Errorf("refresh token revocation failed: %w", err)
	}

	return nil
}

// ConfirmEmail marks the account's email as confirmed, unlocking sign-in
// when the server runs with confirmation required.
func (a *authService) ConfirmEmail(ctx context.Context, userID string) error {
	if err := a.accountRepository.ConfirmAccount(ctx, userID); err != nil {
		return fmt.Errorf("account confirmation failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// issueSession signs an access token for the account, mints and persists an
// opaque refresh token, and assembles the session snapshot.
func (a *authService) issueSession(ctx context.Context, account models.Account) (*models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("id", account.ID).Msg("access token creation failed")
		return nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refreshToken := uuid.NewString()
	if err := a.refreshTokenRepository.SaveRefreshToken(ctx, refreshToken, account.ID, time.Now().Add(a.refreshDuration)); err != nil {
		log.Err(err).Str("id", account.ID).Msg("refresh token persistence failed")
		return nil, fmt.Errorf("refresh token persistence failed: %w", err)
	}

	return &models.Session{
		Subject:      account.ID,
		Email:        account.Email,
		AccessToken:  token.SignedString,
		RefreshToken: refreshToken,
		ExpiresAt:    token.ExpiresAt.Time,
	}, nil
}

// newProfileForAccount derives the initial profile row from registration
// metadata, filling gaps with defaults.
func newProfileForAccount(account models.Account, metadata models.SignUpMetadata) models.Profile {
	profile := models.Profile{
		ID:         account.ID,
		Name:       metadata.Name,
		Email:      account.Email,
		Role:       metadata.Role,
		Department: metadata.Department,
	}
	if profile.Name == "" {
		profile.Name = emailLocalPart(account.Email)
	}
	if profile.Role == "" {
		profile.Role = models.RoleUser
	}
	if profile.Department == "" {
		profile.Department = models.DefaultDepartment
	}

	return profile
}

func identityOf(account models.Account) models.Identity {
	return models.Identity{
		ID:             account.ID,
		Email:          account.Email,
		EmailConfirmed: account.EmailConfirmed,
	}
}

// emailLocalPart returns everything before the first "@", or the whole
// string when no "@" is present.
func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
