// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport and service
// layers: typed context keys, JSON responses, client IP extraction, the
// resty client wrapper, JWT helpers and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they never collide with
// keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user's int64 ID.
	UserIDCtxKey = contextKey("userID")

	// IsAdminCtxKey holds the "adm" claim of the bearer token.
	IsAdminCtxKey = contextKey("isAdmin")
)

// WithUser stores the authenticated user's identity in ctx.
func WithUser(ctx context.Context, userID int64, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, IsAdminCtxKey, isAdmin)
}

// GetUserIDFromContext returns the user ID stored by WithUser. ok is false
// when the value is missing or has another type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// IsAdminFromContext reports whether the request was made by an admin.
func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(IsAdminCtxKey).(bool)
	return isAdmin
}
