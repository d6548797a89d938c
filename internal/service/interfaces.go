// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the ledger chat server: the
// chat pipeline (assistant, intent registry, domain handlers), accounts,
// ledger CRUD and per-user LLM settings.
package service

import (
	"context"

	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// EnsureAdmin creates an admin account with the given credentials when
	// no user with that name exists yet.
	EnsureAdmin(ctx context.Context, username, password string) (models.User, bool, error)
}

// ChatService runs one chat turn: intent extraction, dispatch to the domain
// handlers and the final natural-language reply.
type ChatService interface {
	Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error)
}

// LedgerService backs the plain read/CRUD endpoints of the HTTP API.
type LedgerService interface {
	ListEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, kind models.EntryKind, userID, entryID int64) error

	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, name string) (models.Category, error)

	ListBudgets(ctx context.Context, userID int64, month string) ([]models.Budget, error)
	SetBudget(ctx context.Context, budget models.Budget) (models.Budget, error)

	MonthlyTotals(ctx context.Context, userID int64) ([]models.MonthTotal, error)
	CategoryTotals(ctx context.Context, userID int64, month string) ([]models.CategoryTotal, error)
}

// LLMConfigService stores per-user completion endpoints and resolves the
// endpoint for a single call.
type LLMConfigService interface {
	// Get returns the stored config with the API key masked.
	Get(ctx context.Context, userID int64) (models.LLMConfig, error)
	Save(ctx context.Context, userID int64, cfg models.LLMConfig) error
	// Resolve merges override over the user's stored config. Fields left
	// empty are filled by the completion client defaults.
	Resolve(ctx context.Context, userID int64, override *models.LLMConfig) models.LLMConfig
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Assistant wraps the completion client with the prompts of each mode.
// Methods never fail: upstream errors turn into the mode's fallback text.
type Assistant interface {
	ExtractIntents(ctx context.Context, llm models.LLMConfig, message string) string
	Summarize(ctx context.Context, llm models.LLMConfig, message, results string) string
	Chat(ctx context.Context, llm models.LLMConfig, history []models.Message) string
	AdviseBudgets(ctx context.Context, llm models.LLMConfig, spending []models.CategoryTotal, total decimal.NullDecimal) string
}

// LedgerServiceWrapper defines middleware composition for LedgerService.
// Implementations wrap an existing LedgerService to add behavior such as
// validating.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}
