// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
)

type ledgerService struct {
	categories store.CategoryRepository
	entries    store.EntryRepository
	budgets    store.BudgetRepository

	now    func() time.Time
	logger *logger.Logger
}

func NewLedgerService(storages *store.Storages, logger *logger.Logger) LedgerService {
	return &ledgerService{
		categories: storages.CategoryRepository,
		entries:    storages.EntryRepository,
		budgets:    storages.BudgetRepository,
		now:        time.Now,
		logger:     logger,
	}
}

func (l *ledgerService) ListEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.Entry, error) {
	return l.entries.ListEntries(ctx, kind, filter)
}

func (l *ledgerService) DeleteEntry(ctx context.Context, kind models.EntryKind, userID, entryID int64) error {
	return l.entries.DeleteEntry(ctx, kind, userID, entryID)
}

func (l *ledgerService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return l.categories.ListCategories(ctx, userID)
}

func (l *ledgerService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	categoryType, _ := models.ParseCategoryType(string(category.Type))
	category.Type = categoryType
	return l.categories.CreateCategory(ctx, category)
}

func (l *ledgerService) DeleteCategory(ctx context.Context, userID int64, name string) (models.Category, error) {
	return l.categories.DeleteCategory(ctx, userID, name)
}

func (l *ledgerService) ListBudgets(ctx context.Context, userID int64, month string) ([]models.Budget, error) {
	if month == "" {
		month = l.now().Format("2006-01")
	}
	return l.budgets.ListBudgets(ctx, userID, month)
}

// SetBudget upserts a budget of an expense category, creating the category
// when unseen. Month defaults to the current month and Cycle to
// models.DefaultBudgetCycle.
func (l *ledgerService) SetBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	if budget.Month == "" {
		budget.Month = l.now().Format("2006-01")
	}
	if budget.Cycle == "" {
		budget.Cycle = models.DefaultBudgetCycle
	}

	category, err := l.categories.EnsureCategory(ctx, budget.UserID, budget.Category, models.CategoryExpense)
	if err != nil {
		return models.Budget{}, err
	}
	if category.Type != models.CategoryExpense {
		return models.Budget{}, fmt.Errorf("%w: %s is %s", ErrCategoryTypeConflict, category.Name, category.Type)
	}

	return l.budgets.UpsertBudget(ctx, budget)
}

// MonthlyTotals returns the expense total of every month with records.
func (l *ledgerService) MonthlyTotals(ctx context.Context, userID int64) ([]models.MonthTotal, error) {
	return l.entries.TotalsByMonth(ctx, models.KindExpense, models.EntryFilter{UserID: userID})
}

// CategoryTotals returns expense totals per category, for one month or for
// all time when month is empty.
func (l *ledgerService) CategoryTotals(ctx context.Context, userID int64, month string) ([]models.CategoryTotal, error) {
	return l.entries.TotalsByCategory(ctx, models.KindExpense, models.EntryFilter{UserID: userID, Month: month})
}
