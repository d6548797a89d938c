// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// Conversation roles, matching the chat-completions wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. LLM optionally overrides the
// completion endpoint for this request only.
type ChatRequest struct {
	Message string     `json:"message"`
	LLM     *LLMConfig `json:"llm,omitempty"`
}

// ChatResponse carries the assistant reply and one result per intent that
// was dispatched, in the order the intents were extracted.
type ChatResponse struct {
	Reply   string          `json:"reply"`
	Results []HandlerResult `json:"results"`
}

// HandlerResult is what a domain handler produced for a single intent.
// OK is false for validation failures, type conflicts and parse failures;
// Message is always human-readable.
type HandlerResult struct {
	Intent  string `json:"intent"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ParsedIntent is one (intent, parameters) block extracted from assistant
// output. Values are raw strings; typing happens at dispatch.
type ParsedIntent struct {
	Name   string
	Params map[string]string
}

// IntentArgs is the typed view of ParsedIntent.Params after binding.
// Which fields are meaningful depends on the intent.
type IntentArgs struct {
	Category     string
	Amount       decimal.NullDecimal
	Note         string
	Date         string
	Cycle        string
	Month        string
	CategoryType CategoryType
	TotalBudget  decimal.NullDecimal
	TimeRange    string
	All          bool
}
