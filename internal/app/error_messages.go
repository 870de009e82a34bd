// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// comms server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API —
// the client-side error mapper matches on these exact strings.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginCredentials is returned when the supplied
	// email/password combination does not match any confirmed account.
	MsgInvalidLoginCredentials = "invalid login credentials"

	// MsgEmailNotConfirmed is returned when credentials are correct but the
	// account has not completed the email confirmation flow.
	MsgEmailNotConfirmed = "email not confirmed"

	// MsgEmailAlreadyRegistered is returned when sign-up is attempted with
	// an email that already has an account.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgProfileNotFound is returned when a profile lookup matches no row.
	MsgProfileNotFound = "profile not found"

	// MsgProfilesRelationMissing is returned when the profiles table itself
	// is absent from the database. Clients treat this as a fatal
	// configuration failure, distinct from a missing row.
	MsgProfilesRelationMissing = "relation \"profiles\" does not exist"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRefreshTokenInvalid is returned when a refresh token is unknown,
	// revoked, or past its lifetime.
	MsgRefreshTokenInvalid = "refresh token is invalid"

	// MsgInvalidRole is returned when a role update names an unknown role.
	MsgInvalidRole = "invalid role"

	// MsgInvalidDepartment is returned when a request names an unknown or
	// non-assignable department.
	MsgInvalidDepartment = "invalid department"

	// MsgInvalidTaskStatus is returned when a task update names an unknown
	// status.
	MsgInvalidTaskStatus = "invalid task status"

	// MsgTaskNotFound is returned when a task lookup matches no row.
	MsgTaskNotFound = "task not found"

	// MsgForbiddenDepartment is returned when a non-admin user addresses a
	// department other than their own.
	MsgForbiddenDepartment = "department not accessible to this account"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
