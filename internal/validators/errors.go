// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername     = errors.New("invalid username")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidURL          = errors.New("invalid api url")
	ErrEmptyMessage        = errors.New("message is empty")

	ErrMissingParameter = errors.New("missing required parameter")
	ErrUnknownIntent    = errors.New("unknown intent")
)
