// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"strings"

	"github.com/joms1025/company-management-app/internal/adapter"
	"github.com/joms1025/company-management-app/models"
)

// User-facing messages for the common failure and notice conditions.
const (
	MsgInvalidCredentials  = "Invalid email or password."
	MsgEmailNotConfirmed   = "Please confirm your email address before signing in."
	MsgPasswordRequired    = "Password must not be empty."
	MsgRegistrationFields  = "Email, password and name are required."
	MsgConfirmationPending = "Registration successful. Check your email to confirm your account."
	MsgSchemaMissing       = "The profiles table is missing from the backend database. Run the migrations and restart."
)

// RegisterInput is the data collected by the registration form. Role and
// Department are optional; absent values default server-side to a regular
// user in the default department.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Role       models.Role
	Department models.Department
}

// Login verifies credentials against the backend. A fresh attempt clears a
// previously recorded fatal error. On success loading stays set: the
// signed-in lifecycle event that follows owns clearing it, so the UI never
// observes a signed-out idle state between the two. On failure loading is
// cleared immediately and a user-facing error is returned.
func (r *Reconciler) Login(ctx context.Context, email, password string) error {
	if password == "" {
		return errors.New(MsgPasswordRequired)
	}

	r.clearFatal()
	r.setLoading(true)

	_, err := r.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		r.setLoading(false)
		return friendlyAuthError(err)
	}

	// The signed-in event has already replaced the user and cleared
	// loading by the time SignInWithPassword returns.
	return nil
}

// Register creates a new identity. The profile attributes travel as signup
// metadata for the backend to turn into the profile row. The returned info
// string is non-empty for the confirmation-pending outcome.
func (r *Reconciler) Register(ctx context.Context, input RegisterInput) (info string, err error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return "", errors.New(MsgRegistrationFields)
	}

	r.clearFatal()
	r.setLoading(true)

	resp, err := r.backend.SignUp(ctx, models.SignUpRequest{
		Email:    input.Email,
		Password: input.Password,
		Metadata: models.SignUpMetadata{
			Name:       input.Name,
			Role:       input.Role,
			Department: input.Department,
		},
	})
	if err != nil {
		r.setLoading(false)
		return "", friendlyAuthError(err)
	}

	if resp.Session == nil {
		// Confirmation pending: no lifecycle event will fire until the
		// account is confirmed, so loading is cleared here.
		r.setLoading(false)
		return MsgConfirmationPending, nil
	}

	// The signed-in event owns clearing loading, as in Login.
	return "", nil
}

// Logout signs out. It is always locally effective: the user is dropped and
// loading cleared even when the remote revocation fails, so a stuck remote
// session can never trap the UI in a logged-in state. The remote error is
// still returned for display.
func (r *Reconciler) Logout(ctx context.Context) error {
	r.setLoading(true)

	err := r.backend.SignOut(ctx)

	// The signed-out event normally handles this; enforce it in case the
	// transport failed before the event fired.
	r.recordSession(nil)
	r.clearUser()
	r.setLoading(false)

	return err
}

// SetRole moves the current user to role. It is a no-op when nobody is
// signed in or the role is unchanged, and refuses to touch the backend
// while the fatal error is set. On success only the role field of the
// current user changes.
func (r *Reconciler) SetRole(ctx context.Context, role models.Role) error {
	r.mu.Lock()
	current := r.state.User
	fatal := r.state.FatalError
	r.mu.Unlock()

	if fatal != "" {
		return errors.New(fatal)
	}
	if current == nil || current.Role == role {
		return nil
	}

	r.setLoading(true)
	defer r.setLoading(false)

	if _, err := r.backend.UpdateProfileRole(ctx, current.ID, role); err != nil {
		if errors.Is(err, adapter.ErrSchemaMissing) {
			r.setFatal(MsgSchemaMissing)
			return errors.New(MsgSchemaMissing)
		}
		return err
	}

	r.mu.Lock()
	if r.state.User != nil && r.state.User.ID == current.ID {
		r.state.User.Role = role
		r.publishLocked()
	}
	r.mu.Unlock()

	return nil
}

// friendlyAuthError maps the two most common credential failures to fixed
// user-facing messages and passes everything else through.
func friendlyAuthError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return errors.New(MsgInvalidCredentials)
	case errors.Is(err, adapter.ErrEmailNotConfirmed):
		return errors.New(MsgEmailNotConfirmed)
	default:
		return err
	}
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
