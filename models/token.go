// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued after register/login.
//
// Token doubles as the JWT claim set: the registered claims plus the "adm"
// flag. SignedString is the compact form sent in the Authorization header;
// UserID is the parsed "sub" claim, filled in by the token parser.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	Admin bool `json:"adm,omitempty"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user identifier.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
