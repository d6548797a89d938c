// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (LedgerService, *store.Storages, int64) {
	t.Helper()

	storages, userID := newTestStorages(t)
	return NewLedgerValidationService().Wrap(NewLedgerService(storages, logger.Nop())), storages, userID
}

func TestLedgerService_SetBudgetDefaults(t *testing.T) {
	ledger, storages, userID := newTestLedger(t)
	ctx := context.Background()

	budget, err := ledger.SetBudget(ctx, models.Budget{UserID: userID, Category: "餐饮", Amount: dec("600")})

	require.NoError(t, err)
	assert.Equal(t, currentMonth(), budget.Month)
	assert.Equal(t, models.DefaultBudgetCycle, budget.Cycle)

	category, err := storages.CategoryRepository.FindCategory(ctx, userID, "餐饮")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryExpense, category.Type)

	budgets, err := ledger.ListBudgets(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.True(t, budgets[0].Amount.Equal(dec("600")))
}

func TestLedgerService_SetBudgetOnIncomeCategory(t *testing.T) {
	ledger, _, userID := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.CreateCategory(ctx, models.Category{UserID: userID, Name: "工资", Type: models.CategoryIncome})
	require.NoError(t, err)

	_, err = ledger.SetBudget(ctx, models.Budget{UserID: userID, Category: "工资", Amount: dec("100")})

	assert.True(t, errors.Is(err, ErrCategoryTypeConflict))
}

func TestLedgerService_Validation(t *testing.T) {
	ledger, _, userID := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.SetBudget(ctx, models.Budget{UserID: userID, Category: "餐饮", Amount: dec("-1")})
	assert.True(t, errors.Is(err, validators.ErrInvalidAmount))

	_, err = ledger.CreateCategory(ctx, models.Category{UserID: userID, Name: " ", Type: models.CategoryExpense})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))

	_, err = ledger.CreateCategory(ctx, models.Category{UserID: userID, Name: "宠物", Type: "transfer"})
	assert.True(t, errors.Is(err, validators.ErrInvalidCategoryType))

	_, err = ledger.ListBudgets(ctx, userID, "2025/06")
	assert.True(t, errors.Is(err, validators.ErrInvalidMonth))

	err = ledger.DeleteEntry(ctx, models.KindExpense, userID, 0)
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestLedgerService_CategoryDefaultsToExpense(t *testing.T) {
	ledger, _, userID := newTestLedger(t)

	category, err := ledger.CreateCategory(context.Background(), models.Category{UserID: userID, Name: "宠物"})

	require.NoError(t, err)
	assert.Equal(t, models.CategoryExpense, category.Type)
}

func TestLedgerService_Totals(t *testing.T) {
	ledger, storages, userID := newTestLedger(t)
	ctx := context.Background()

	_, err := storages.CategoryRepository.EnsureCategory(ctx, userID, "餐饮", models.CategoryExpense)
	require.NoError(t, err)
	for _, e := range []models.Entry{
		{UserID: userID, Category: "餐饮", Amount: dec("10"), Date: "2025-05-03"},
		{UserID: userID, Category: "餐饮", Amount: dec("15.5"), Date: "2025-06-01"},
	} {
		_, err = storages.EntryRepository.AddEntry(ctx, models.KindExpense, e)
		require.NoError(t, err)
	}

	monthly, err := ledger.MonthlyTotals(ctx, userID)
	require.NoError(t, err)
	require.Len(t, monthly, 2)

	byCategory, err := ledger.CategoryTotals(ctx, userID, "2025-06")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.True(t, byCategory[0].Total.Equal(dec("15.5")))

	allTime, err := ledger.CategoryTotals(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, allTime, 1)
	assert.True(t, allTime[0].Total.Equal(dec("25.5")))
}

func TestLedgerService_DeleteEntry(t *testing.T) {
	ledger, storages, userID := newTestLedger(t)
	ctx := context.Background()

	_, err := storages.CategoryRepository.EnsureCategory(ctx, userID, "工资", models.CategoryIncome)
	require.NoError(t, err)
	entry, err := storages.EntryRepository.AddEntry(ctx, models.KindIncome, models.Entry{UserID: userID, Category: "工资", Amount: dec("1"), Date: "2025-06-01"})
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteEntry(ctx, models.KindIncome, userID, entry.ID))
	err = ledger.DeleteEntry(ctx, models.KindIncome, userID, entry.ID)
	assert.True(t, errors.Is(err, store.ErrEntryNotFound))
}
