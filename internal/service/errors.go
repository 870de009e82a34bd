package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid login credentials")
	ErrEmailNotConfirmed   = errors.New("email not confirmed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRefreshTokenInvalid     = errors.New("refresh token is invalid or revoked")

	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidDepartment   = errors.New("invalid department")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrForbiddenDepartment = errors.New("department not allowed for this account")
)
