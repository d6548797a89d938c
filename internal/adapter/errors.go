// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrTimeout is returned when the call outlives its deadline.
	ErrTimeout = errors.New("completion request timed out")

	// ErrProviderError is returned for a 2xx body carrying an error object.
	ErrProviderError = errors.New("completion provider returned an error")

	// ErrEmptyCompletion is returned when the response has no choices.
	ErrEmptyCompletion = errors.New("completion response has no choices")

	// ErrNoEndpoint is returned when neither the request nor the client
	// defaults name an endpoint URL.
	ErrNoEndpoint = errors.New("completion endpoint is not configured")
)
