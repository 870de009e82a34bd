package adapter

import "errors"

// Sentinel errors mapped from backend HTTP responses. Callers match on them
// with [errors.Is]; the raw response body is preserved in the wrap chain.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrInvalidCredentials is the backend's rejection of an
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrEmailNotConfirmed marks a sign-in attempt on an account that has
	// not completed the confirmation flow.
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	// ErrProfileNotFound marks a profile lookup that matched no row. This
	// is a recoverable condition: the caller falls back to deriving a user
	// from the bare session.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSchemaMissing marks the backend reporting that the profiles table
	// itself does not exist. It is a fatal configuration failure and must
	// never be folded into fallback derivation.
	ErrSchemaMissing = errors.New("profiles relation does not exist")

	ErrInternalServerError = errors.New("internal server error")
)
