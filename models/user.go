// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account of the finance assistant. Every ledger row, budget and
// conversation history is scoped by UserID.
type User struct {
	// UserID is the server-assigned identifier. It is never accepted from
	// request bodies.
	UserID int64 `json:"user_id"`

	// Username is unique across the installation.
	Username string `json:"username"`

	// Password carries the plain-text password on register/login requests
	// only. It is cleared before the user is returned to a caller.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// IsAdmin grants access to the /api/admin routes.
	IsAdmin bool `json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to serialize back to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// AuthResponse is returned by the register and login endpoints alongside the
// Authorization header.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
