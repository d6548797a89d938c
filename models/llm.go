// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// LLMConfig addresses an OpenAI-compatible chat-completions endpoint.
type LLMConfig struct {
	APIURL string `json:"api_url"`
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model"`
}

// IsZero reports whether no field is set.
func (c LLMConfig) IsZero() bool {
	return c.APIURL == "" && c.APIKey == "" && c.Model == ""
}

// WithFallback fills every empty field of c from fallback.
func (c LLMConfig) WithFallback(fallback LLMConfig) LLMConfig {
	if c.APIURL == "" {
		c.APIURL = fallback.APIURL
	}
	if c.APIKey == "" {
		c.APIKey = fallback.APIKey
	}
	if c.Model == "" {
		c.Model = fallback.Model
	}
	return c
}

// Masked hides all but the last four characters of the API key.
func (c LLMConfig) Masked() LLMConfig {
	if n := len(c.APIKey); n > 4 {
		c.APIKey = strings.Repeat("*", n-4) + c.APIKey[n-4:]
	} else if n > 0 {
		c.APIKey = strings.Repeat("*", n)
	}
	return c
}

// CompletionRequest is a single call to the completion endpoint.
type CompletionRequest struct {
	Endpoint    LLMConfig
	Messages    []Message
	Temperature float32
	// Timeout bounds the whole call. Zero means the client default.
	Timeout time.Duration
}
