// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ledger chat server handlers, middleware and intent handlers.
//
// Msg* constants are written into HTTP error bodies or log entries.
// Reply* constants are the Chinese result texts produced by the intent
// handlers; they are fmt templates and flow into the summary step.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied
	// username/password combination does not match any user.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when a non-admin user calls an admin route.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when account creation fails for an
	// unexpected reason.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler cannot issue a token.
	MsgLoginFailed = "login failed"

	// MsgUsernameAlreadyExists is returned when registration is rejected
	// because the username is taken.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgDataNotFound is returned when a read or delete targets a row that
	// does not exist for the current user.
	MsgDataNotFound = "data not found"

	// MsgCategoryAlreadyExists is returned when a manual category create
	// collides with an existing name of either type.
	MsgCategoryAlreadyExists = "category already exists"

	// MsgCategoryTypeConflict is returned when a budget is posted for an
	// income category.
	MsgCategoryTypeConflict = "category type conflict"

	// MsgEmptyMessage is returned when POST /api/chat has a blank message.
	MsgEmptyMessage = "message is empty"

	// MsgRequestBlocked is the fixed body of a gated request.
	MsgRequestBlocked = "forbidden"

	// MsgNotFound is the body of unmatched routes.
	MsgNotFound = "not found"
)
