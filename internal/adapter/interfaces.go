// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to OpenAI-compatible chat-completions endpoints.
//
// The primary abstraction is [CompletionClient]. The HTTP implementation
// ([NewCompletionClient]) sends requests with resty and decodes them with
// the go-openai wire types, so any provider speaking that format works
// (SiliconFlow, DeepSeek, OpenAI, a local gateway).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// provider error bodies by mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/completion_client_mock.go -package=mock

// CompletionClient performs a single chat-completion call and returns the
// content of the first choice.
type CompletionClient interface {
	// Complete sends req to req.Endpoint, falling back to the client's
	// default endpoint for empty fields. The call is bounded by
	// req.Timeout, or the client default when zero.
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}
