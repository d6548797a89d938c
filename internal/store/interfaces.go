// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// CategoryRepository owns the categories table. Names are unique per user
// and a category never changes type.
type CategoryRepository interface {
	FindCategory(ctx context.Context, userID int64, name string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	// EnsureCategory returns the existing category with that name, or
	// creates it with categoryType. The caller checks the returned type.
	EnsureCategory(ctx context.Context, userID int64, name string, categoryType models.CategoryType) (models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	// DeleteCategory removes the category with its dependent rows in one
	// transaction and returns what was deleted.
	DeleteCategory(ctx context.Context, userID int64, name string) (models.Category, error)
}

// EntryRepository reads and writes expense records and income rows; kind
// selects the table.
type EntryRepository interface {
	AddEntry(ctx context.Context, kind models.EntryKind, entry models.Entry) (models.Entry, error)
	ListEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.Entry, error)
	SumEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) (decimal.Decimal, error)
	TotalsByCategory(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.CategoryTotal, error)
	TotalsByMonth(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.MonthTotal, error)
	DeleteEntry(ctx context.Context, kind models.EntryKind, userID, entryID int64) error
}

type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	// UpdateBudget changes amount and cycle of an existing row and reports
	// whether one was found.
	UpdateBudget(ctx context.Context, budget models.Budget) (bool, error)
	ListBudgets(ctx context.Context, userID int64, month string) ([]models.Budget, error)
	// ListBudgetStatus joins expense-category budgets of month with the sum
	// of records in that month. An empty category lists all of them.
	ListBudgetStatus(ctx context.Context, userID int64, month, category string) ([]models.BudgetStatus, error)
}

type LLMConfigRepository interface {
	GetLLMConfig(ctx context.Context, userID int64) (models.LLMConfig, error)
	SaveLLMConfig(ctx context.Context, userID int64, cfg models.LLMConfig) error
}

// ConversationStore keeps a bounded chat history per user in memory.
type ConversationStore interface {
	Append(userID int64, messages ...models.Message)
	History(userID int64) []models.Message
	EvictIdle(idleFor time.Duration) int
	Len() int
}
