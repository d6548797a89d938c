// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key, issuer or
	// duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates an incomplete completion endpoint.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidGateConfigs indicates a non-positive block threshold or ban
	// duration on an enabled gate.
	ErrInvalidGateConfigs = errors.New("invalid gate configuration")
	// ErrInvalidChatConfigs indicates a history limit below one turn.
	ErrInvalidChatConfigs = errors.New("invalid chat configuration")
	// ErrInvalidWorkerConfigs indicates an empty janitor schedule.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
