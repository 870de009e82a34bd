// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/internal/logger"
	"github.com/joms1025/company-management-app/internal/mock"
	"github.com/joms1025/company-management-app/models"
)

type testReconciler struct {
	*Reconciler
	backend *mock.MockBackendClient

	// emit invokes the handler the reconciler registered on construction,
	// standing in for the backend's event broker.
	emit func(adapter.AuthEvent)
}

func newTestReconciler(t *testing.T) *testReconciler {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendClient(ctrl)

	tr := &testReconciler{backend: backend}
	backend.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(handler func(adapter.AuthEvent)) func() {
		tr.emit = handler
		return func() {}
	})

	tr.Reconciler = NewReconciler(backend, logger.Nop())
	t.Cleanup(tr.Close)
	return tr
}

func sessionFor(subject, email string) *models.Session {
	return &models.Session{
		Subject:      subject,
		Email:        email,
		AccessToken:  "access-" + subject,
		RefreshToken: "refresh-" + subject,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func annProfile() models.Profile {
	return models.Profile{
		ID:         "u1",
		Name:       "Ann",
		Role:       models.RoleAdmin,
		Department: models.DepartmentOffice,
	}
}

// signIn drives the reconciler into a signed-in state with Ann's hydrated
// user, the starting point for most operation tests.
func (tr *testReconciler) signInAnn(t *testing.T) {
	t.Helper()
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(annProfile(), nil)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})
	require.NotNil(t, tr.State().User)
}

func TestSignedInEvent_HydratesUserFromProfile(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(annProfile(), nil)

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	require.NotNil(t, state.User)
	assert.Equal(t, &models.User{
		ID:         "u1",
		Name:       "Ann",
		Email:      "a@x.com",
		Role:       models.RoleAdmin,
		Department: models.DepartmentOffice,
	}, state.User)
	assert.False(t, state.Loading)
	assert.Empty(t, state.FatalError)
}

func TestSignedInEvent_FallbackUserFromSessionEmail(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u2").
		Return(models.Profile{}, adapter.ErrProfileNotFound)

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u2", "maria@x.com")})

	state := tr.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "maria", state.User.Name)
	assert.Equal(t, models.RoleUser, state.User.Role)
	assert.Equal(t, models.DefaultDepartment, state.User.Department)
	assert.False(t, state.Loading)
}

func TestEmailLocalPart(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"maria@x.com", "maria"},
		{"no-at-sign", "no-at-sign"},
		{"@x.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, emailLocalPart(tt.email), "email %q", tt.email)
	}
}

func TestSignedInEvent_NoProfileNoEmail_NullUser(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u2").
		Return(models.Profile{}, adapter.ErrProfileNotFound)

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u2", "")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
	assert.Empty(t, state.FatalError)
}

func TestSignedOutEvent_AlwaysClearsUser(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedOut, Session: nil})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestPasswordRecoveryEvent_LeavesUserUntouched(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)
	before := tr.State().User

	tr.emit(adapter.AuthEvent{Kind: adapter.EventPasswordRecovery, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Equal(t, before, state.User)
	assert.False(t, state.Loading)
}

func TestUnknownEventKind_OnlyClearsLoading(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)
	before := tr.State().User

	tr.emit(adapter.AuthEvent{Kind: "MFA_CHALLENGE", Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Equal(t, before, state.User)
	assert.False(t, state.Loading)
}

func TestSchemaMissingLookup_SetsFatalAndForcesNilUser(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)

	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, adapter.ErrSchemaMissing)

	tr.emit(adapter.AuthEvent{Kind: adapter.EventTokenRefreshed, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.Equal(t, MsgSchemaMissing, state.FatalError)
	assert.False(t, state.Loading)
}

func TestFatalErrorSet_SkipsProfileLookupOnLaterEvents(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, adapter.ErrSchemaMissing)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})
	require.NotEmpty(t, tr.State().FatalError)

	// No FindProfileByID expectation: a lookup here would fail the test.
	tr.emit(adapter.AuthEvent{Kind: adapter.EventTokenRefreshed, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.Equal(t, MsgSchemaMissing, state.FatalError)
	assert.False(t, state.Loading)
}

func TestFatalErrorSet_SessionEventStillPublishesNilUser(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, adapter.ErrSchemaMissing)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})
	require.NotEmpty(t, tr.State().FatalError)

	states, unsubscribe := tr.Subscribe()
	defer unsubscribe()

	// The clear must not be gated on the lookup-subject check: the event
	// carries a live session, yet the user stays nil and a fresh snapshot
	// reflecting that is still published.
	tr.emit(adapter.AuthEvent{Kind: adapter.EventUserUpdated, Session: sessionFor("u1", "a@x.com")})

	select {
	case snapshot := <-states:
		assert.Nil(t, snapshot.User)
		assert.Equal(t, MsgSchemaMissing, snapshot.FatalError)
	case <-time.After(time.Second):
		t.Fatal("no state published for the event")
	}
	assert.Nil(t, tr.State().User)
}

func TestLookupPanic_SwallowedAndLoadingCleared(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		DoAndReturn(func(context.Context, string) (models.Profile, error) {
			panic("backend decoder blew up")
		})

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
	assert.Empty(t, state.FatalError)
}

func TestLookupFailure_DegradesToNilUser(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, errors.New("network down"))

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
	assert.Empty(t, state.FatalError)
}

func TestStaleLookupResult_Discarded(t *testing.T) {
	tr := newTestReconciler(t)

	// The sign-out lands while u1's profile lookup is still in flight;
	// the late result must not resurrect the user.
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		DoAndReturn(func(context.Context, string) (models.Profile, error) {
			tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedOut, Session: nil})
			return annProfile(), nil
		})

	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestLogin_Success(t *testing.T) {
	tr := newTestReconciler(t)

	session := sessionFor("u1", "a@x.com")
	tr.backend.EXPECT().SignInWithPassword(gomock.Any(), "a@x.com", "secret").
		DoAndReturn(func(ctx context.Context, email, password string) (models.AuthResponse, error) {
			tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: session})
			return models.AuthResponse{Identity: models.Identity{ID: "u1", Email: email}, Session: session}, nil
		})
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(annProfile(), nil)

	err := tr.Login(context.Background(), "a@x.com", "secret")

	require.NoError(t, err)
	state := tr.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "Ann", state.User.Name)
	assert.Equal(t, "a@x.com", state.User.Email)
	assert.False(t, state.Loading)
	assert.Empty(t, state.FatalError)
}

func TestLogin_EmptyPassword(t *testing.T) {
	tr := newTestReconciler(t)

	err := tr.Login(context.Background(), "a@x.com", "")

	require.EqualError(t, err, MsgPasswordRequired)
	assert.False(t, tr.State().Loading)
}

func TestLogin_InvalidCredentials_FriendlyMessage(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().SignInWithPassword(gomock.Any(), "a@x.com", "wrong").
		Return(models.AuthResponse{}, adapter.ErrInvalidCredentials)

	err := tr.Login(context.Background(), "a@x.com", "wrong")

	require.EqualError(t, err, MsgInvalidCredentials)
	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestLogin_EmailNotConfirmed_FriendlyMessage(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().SignInWithPassword(gomock.Any(), "a@x.com", "secret").
		Return(models.AuthResponse{}, adapter.ErrEmailNotConfirmed)

	err := tr.Login(context.Background(), "a@x.com", "secret")

	require.EqualError(t, err, MsgEmailNotConfirmed)
	assert.False(t, tr.State().Loading)
}

func TestLogin_ClearsPreviousFatalError(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, adapter.ErrSchemaMissing)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})
	require.NotEmpty(t, tr.State().FatalError)

	tr.backend.EXPECT().SignInWithPassword(gomock.Any(), "a@x.com", "secret").
		Return(models.AuthResponse{}, adapter.ErrInvalidCredentials)

	_ = tr.Login(context.Background(), "a@x.com", "secret")

	assert.Empty(t, tr.State().FatalError)
}

func TestRegister_ConfirmationPending(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().SignUp(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Identity: models.Identity{ID: "u9", Email: "new@x.com"}}, nil)

	info, err := tr.Register(context.Background(), RegisterInput{
		Email:    "new@x.com",
		Password: "secret",
		Name:     "Newcomer",
	})

	require.NoError(t, err)
	assert.Equal(t, MsgConfirmationPending, info)
	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestRegister_WithImmediateSession(t *testing.T) {
	tr := newTestReconciler(t)

	session := sessionFor("u9", "new@x.com")
	tr.backend.EXPECT().SignUp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error) {
			assert.Equal(t, "Newcomer", req.Metadata.Name)
			assert.Equal(t, models.RoleUser, req.Metadata.Role)
			tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: session})
			return models.AuthResponse{Identity: models.Identity{ID: "u9"}, Session: session}, nil
		})
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u9").
		Return(models.Profile{ID: "u9", Name: "Newcomer", Role: models.RoleUser, Department: models.DepartmentLS}, nil)

	info, err := tr.Register(context.Background(), RegisterInput{
		Email:    "new@x.com",
		Password: "secret",
		Name:     "Newcomer",
		Role:     models.RoleUser,
	})

	require.NoError(t, err)
	assert.Empty(t, info)
	state := tr.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "Newcomer", state.User.Name)
	assert.False(t, state.Loading)
}

func TestRegister_MissingFields(t *testing.T) {
	tr := newTestReconciler(t)

	_, err := tr.Register(context.Background(), RegisterInput{Email: "new@x.com"})

	require.EqualError(t, err, MsgRegistrationFields)
}

func TestRegister_BackendError(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().SignUp(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, adapter.ErrConflict)

	_, err := tr.Register(context.Background(), RegisterInput{
		Email:    "new@x.com",
		Password: "secret",
		Name:     "Newcomer",
	})

	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.False(t, tr.State().Loading)
}

func TestLogout_LocallyEffectiveOnRemoteFailure(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)

	tr.backend.EXPECT().SignOut(gomock.Any()).Return(errors.New("backend unreachable"))

	err := tr.Logout(context.Background())

	require.Error(t, err)
	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestLogout_Success(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)

	tr.backend.EXPECT().SignOut(gomock.Any()).
		DoAndReturn(func(context.Context) error {
			tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedOut, Session: nil})
			return nil
		})

	err := tr.Logout(context.Background())

	require.NoError(t, err)
	state := tr.State()
	assert.Nil(t, state.User)
	assert.False(t, state.Loading)
}

func TestSetRole_SameRole_NoStoreUpdate(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)
	before := tr.State()

	// No UpdateProfileRole expectation: any call would fail the test.
	err := tr.SetRole(context.Background(), models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, before, tr.State())
}

func TestSetRole_NoUser_NoOp(t *testing.T) {
	tr := newTestReconciler(t)

	err := tr.SetRole(context.Background(), models.RoleAdmin)

	require.NoError(t, err)
	assert.Nil(t, tr.State().User)
}

func TestSetRole_Success_UpdatesOnlyRole(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)
	before := *tr.State().User

	tr.backend.EXPECT().UpdateProfileRole(gomock.Any(), "u1", models.RoleUser).
		Return(models.Profile{ID: "u1", Name: "Ann", Role: models.RoleUser, Department: models.DepartmentOffice}, nil)

	err := tr.SetRole(context.Background(), models.RoleUser)

	require.NoError(t, err)
	state := tr.State()
	require.NotNil(t, state.User)
	assert.Equal(t, models.RoleUser, state.User.Role)
	assert.Equal(t, before.Name, state.User.Name)
	assert.Equal(t, before.Email, state.User.Email)
	assert.Equal(t, before.Department, state.User.Department)
	assert.False(t, state.Loading)
}

func TestSetRole_SchemaMissing_SetsFatal(t *testing.T) {
	tr := newTestReconciler(t)
	tr.signInAnn(t)

	tr.backend.EXPECT().UpdateProfileRole(gomock.Any(), "u1", models.RoleUser).
		Return(models.Profile{}, adapter.ErrSchemaMissing)

	err := tr.SetRole(context.Background(), models.RoleUser)

	require.EqualError(t, err, MsgSchemaMissing)
	state := tr.State()
	assert.Nil(t, state.User)
	assert.Equal(t, MsgSchemaMissing, state.FatalError)
	assert.False(t, state.Loading)
}

func TestSetRole_FatalAlreadySet_RefusesUpdate(t *testing.T) {
	tr := newTestReconciler(t)
	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").
		Return(models.Profile{}, adapter.ErrSchemaMissing)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	err := tr.SetRole(context.Background(), models.RoleUser)

	require.EqualError(t, err, MsgSchemaMissing)
}

func TestSubscribe_ReceivesLatestSnapshot(t *testing.T) {
	tr := newTestReconciler(t)
	states, unsubscribe := tr.Subscribe()
	defer unsubscribe()

	tr.backend.EXPECT().FindProfileByID(gomock.Any(), "u1").Return(annProfile(), nil)
	tr.emit(adapter.AuthEvent{Kind: adapter.EventSignedIn, Session: sessionFor("u1", "a@x.com")})

	// The channel holds only the newest snapshot; older intermediate
	// states were replaced during the event.
	state := <-states
	require.NotNil(t, state.User)
	assert.Equal(t, "Ann", state.User.Name)
	assert.False(t, state.Loading)
}

func TestClose_ClosesSubscriberChannels(t *testing.T) {
	tr := newTestReconciler(t)
	states, _ := tr.Subscribe()

	tr.Close()

	select {
	case _, ok := <-states:
		assert.False(t, ok)
	default:
		t.Fatal("expected subscriber channel to be closed")
	}
}
