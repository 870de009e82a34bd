package store

import "errors"

var (
	// ErrEmailAlreadyExists indicates a unique-constraint collision on the
	// users.email column during registration.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrAccountNotFound indicates a credential lookup matched no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProfileNotFound indicates a profile lookup matched no row. This is
	// a recoverable condition distinct from [ErrRelationMissing].
	ErrProfileNotFound = errors.New("profile not found")

	// ErrRelationMissing indicates a referenced table does not exist
	// (PostgreSQL 42P01). It signals a broken deployment, not bad input,
	// and is surfaced to clients as a fatal configuration failure.
	ErrRelationMissing = errors.New("relation does not exist")

	// ErrTaskNotFound indicates a task lookup or update matched no row.
	ErrTaskNotFound = errors.New("task not found")

	// ErrRefreshTokenNotFound indicates a refresh token is unknown, revoked,
	// or expired.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)
