// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request bodies (users,
//     categories, budgets, LLM settings, chat requests). Supports optional
//     field-level scoping for targeted validation.
//   - IntentBinder: turns the raw string parameters extracted by the
//     assistant into typed models.IntentArgs, once per intent, before any
//     handler runs.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable and testable validation strategies.
package validators

import (
	"context"

	"github.com/MKhiriev/go-ledger-chat/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// IntentBinder validates and coerces the parameters of one parsed intent.
type IntentBinder interface {

	// Bind returns the typed arguments for intent. Missing required
	// parameters yield ErrMissingParameter; malformed values yield the
	// matching ErrInvalid* error. Unknown parameter keys are ignored.
	Bind(ctx context.Context, intent string, params map[string]string) (models.IntentArgs, error)
}
