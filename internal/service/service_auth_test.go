package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/mock"
	"github.com/joms1025/company-management-app/internal/store"
	"github.com/joms1025/company-management-app/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "comms-server",
		TokenDuration:   time.Hour,
		RefreshDuration: 24 * time.Hour,
	}
}

// newTestAuthSvc builds an authService wired to fresh repository mocks.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	cfg config.Auth,
) (
	*authService,
	*mock.MockAccountRepository,
	*mock.MockProfileRepository,
	*mock.MockRefreshTokenRepository,
) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockProfiles := mock.NewMockProfileRepository(ctrl)
	mockTokens := mock.NewMockRefreshTokenRepository(ctrl)

	svc := NewAuthService(mockAccounts, mockProfiles, mockTokens, cfg, logger.Nop()).(*authService)

	return svc, mockAccounts, mockProfiles, mockTokens
}

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockProfiles, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) (models.Account, error) {
				assert.NotEmpty(t, a.ID)
				assert.Equal(t, "john@example.com", a.Email)
				assert.True(t, a.EmailConfirmed)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret")))
				return a, nil
			},
		),
		mockProfiles.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Profile) (models.Profile, error) {
				assert.Equal(t, "John", p.Name)
				assert.Equal(t, models.RoleUser, p.Role)
				assert.Equal(t, models.DepartmentHouse, p.Department)
				return p, nil
			},
		),
		mockTokens.EXPECT().SaveRefreshToken(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	response, err := svc.SignUp(ctx, models.SignUpRequest{
		Email:    "John@example.com",
		Password: "secret",
		Metadata: models.SignUpMetadata{Name: "John", Department: models.DepartmentHouse},
	})
	require.NoError(t, err)
	require.NotNil(t, response.Session)
	assert.Equal(t, response.Identity.ID, response.Session.Subject)
	assert.NotEmpty(t, response.Session.AccessToken)
	assert.NotEmpty(t, response.Session.RefreshToken)
}

func TestAuthService_SignUp_DefaultsFromEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, mockProfiles, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) { return a, nil },
	)
	mockProfiles.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, "maria", p.Name)
			assert.Equal(t, models.RoleUser, p.Role)
			assert.Equal(t, models.DefaultDepartment, p.Department)
			return p, nil
		},
	)
	mockTokens.EXPECT().SaveRefreshToken(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "maria@example.com", Password: "pw"})
	require.NoError(t, err)
}

func TestAuthService_SignUp_ConfirmationPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAuthConfig()
	cfg.RequireConfirmation = true
	svc, mockAccounts, mockProfiles, _ := newTestAuthSvc(t, ctrl, cfg)
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Account) (models.Account, error) {
			assert.False(t, a.EmailConfirmed)
			return a, nil
		},
	)
	mockProfiles.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) { return p, nil },
	)

	response, err := svc.SignUp(ctx, models.SignUpRequest{Email: "new@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Nil(t, response.Session, "no session must be issued while confirmation is pending")
	assert.False(t, response.Identity.EmailConfirmed)
}

func TestAuthService_SignUp_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_SignUp_UnknownDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email:    "a@b.c",
		Password: "pw",
		Metadata: models.SignUpMetadata{Department: "Research"},
	})
	require.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestAuthService_SignUp_BroadcastDepartmentRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email:    "a@b.c",
		Password: "pw",
		Metadata: models.SignUpMetadata{Department: models.DepartmentAll},
	})
	require.ErrorIs(t, err, ErrInvalidDepartment)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	mockAccounts.EXPECT().CreateAccount(ctx, gomock.Any()).
		Return(models.Account{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "dup@example.com", Password: "pw"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "john@example.com").Return(models.Account{
		ID:             "u1",
		Email:          "john@example.com",
		PasswordHash:   string(hash),
		EmailConfirmed: true,
	}, nil)
	mockTokens.EXPECT().SaveRefreshToken(ctx, gomock.Any(), "u1", gomock.Any()).Return(nil)

	response, err := svc.SignIn(ctx, models.SignInRequest{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, response.Session)
	assert.Equal(t, "u1", response.Session.Subject)
	assert.False(t, response.Session.Expired())
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "ghost@example.com").
		Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.SignIn(ctx, models.SignInRequest{Email: "ghost@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "john@example.com").Return(models.Account{
		ID:           "u1",
		Email:        "john@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err = svc.SignIn(ctx, models.SignInRequest{Email: "john@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignIn_EmailNotConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAuthConfig()
	cfg.RequireConfirmation = true
	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl, cfg)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "john@example.com").Return(models.Account{
		ID:             "u1",
		Email:          "john@example.com",
		PasswordHash:   string(hash),
		EmailConfirmed: false,
	}, nil)

	_, err = svc.SignIn(ctx, models.SignInRequest{Email: "john@example.com", Password: "secret"})
	require.ErrorIs(t, err, ErrEmailNotConfirmed)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	gomock.InOrder(
		mockTokens.EXPECT().ConsumeRefreshToken(ctx, "old-token").Return("u1", nil),
		mockAccounts.EXPECT().FindAccountByID(ctx, "u1").Return(models.Account{
			ID:             "u1",
			Email:          "john@example.com",
			EmailConfirmed: true,
		}, nil),
		mockTokens.EXPECT().SaveRefreshToken(ctx, gomock.Any(), "u1", gomock.Any()).Return(nil),
	)

	response, err := svc.Refresh(ctx, "old-token")
	require.NoError(t, err)
	require.NotNil(t, response.Session)
	assert.NotEqual(t, "old-token", response.Session.RefreshToken)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	mockTokens.EXPECT().ConsumeRefreshToken(ctx, "bogus").
		Return("", store.ErrRefreshTokenNotFound)

	_, err := svc.Refresh(ctx, "bogus")
	require.ErrorIs(t, err, ErrRefreshTokenInvalid)
}

func TestAuthService_SignOut_RevokesTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	mockTokens.EXPECT().RevokeUserTokens(ctx, "u1").Return(nil)

	require.NoError(t, svc.SignOut(ctx, "u1"))
}

func TestAuthService_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockTokens := newTestAuthSvc(t, ctrl, testAuthConfig())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockAccounts.EXPECT().FindAccountByEmail(ctx, "john@example.com").Return(models.Account{
		ID:             "u1",
		Email:          "john@example.com",
		PasswordHash:   string(hash),
		EmailConfirmed: true,
	}, nil)
	mockTokens.EXPECT().SaveRefreshToken(ctx, gomock.Any(), "u1", gomock.Any()).Return(nil)

	response, err := svc.SignIn(ctx, models.SignInRequest{Email: "john@example.com", Password: "secret"})
	require.NoError(t, err)

	token, err := svc.ParseToken(ctx, response.Session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", token.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl, testAuthConfig())

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
