// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_CreateDefaultsToExpense(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	c, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: "餐饮"})
	require.NoError(t, err)
	assert.Positive(t, c.ID)
	assert.Equal(t, models.CategoryExpense, c.Type)

	found, err := s.CategoryRepository.FindCategory(ctx, userID, "餐饮")
	require.NoError(t, err)
	assert.Equal(t, c, found)
}

func TestCategoryRepository_NameIsUniqueAcrossTypes(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	_, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: "工资", Type: models.CategoryIncome})
	require.NoError(t, err)

	_, err = s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: "工资", Type: models.CategoryExpense})
	assert.ErrorIs(t, err, ErrCategoryAlreadyExists)
}

func TestCategoryRepository_EnsureKeepsExistingType(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	first, err := s.CategoryRepository.EnsureCategory(ctx, userID, "工资", models.CategoryIncome)
	require.NoError(t, err)

	again, err := s.CategoryRepository.EnsureCategory(ctx, userID, "工资", models.CategoryExpense)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, models.CategoryIncome, again.Type)
}

func TestCategoryRepository_ListIsPerUser(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	other, err := s.UserRepository.CreateUser(ctx, models.User{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	for _, name := range []string{"交通", "餐饮"} {
		_, err = s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: name})
		require.NoError(t, err)
	}
	_, err = s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: other.UserID, Name: "娱乐"})
	require.NoError(t, err)

	list, err := s.CategoryRepository.ListCategories(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, c := range list {
		assert.Equal(t, userID, c.UserID)
	}
}

func TestCategoryRepository_DeleteExpenseCascades(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	for _, name := range []string{"餐饮", "交通"} {
		_, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: name})
		require.NoError(t, err)
		_, err = s.EntryRepository.AddEntry(ctx, models.KindExpense, models.Entry{UserID: userID, Category: name, Amount: amount("10"), Date: "2025-06-08"})
		require.NoError(t, err)
		_, err = s.BudgetRepository.UpsertBudget(ctx, models.Budget{UserID: userID, Category: name, Amount: amount("100"), Month: "2025-06"})
		require.NoError(t, err)
	}

	deleted, err := s.CategoryRepository.DeleteCategory(ctx, userID, "餐饮")
	require.NoError(t, err)
	assert.Equal(t, "餐饮", deleted.Name)

	_, err = s.CategoryRepository.FindCategory(ctx, userID, "餐饮")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	records, err := s.EntryRepository.ListEntries(ctx, models.KindExpense, models.EntryFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "交通", records[0].Category)

	budgets, err := s.BudgetRepository.ListBudgets(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "交通", budgets[0].Category)

	// idempotent: the second delete reports not found and changes nothing
	_, err = s.CategoryRepository.DeleteCategory(ctx, userID, "餐饮")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Equal(t, 1, countRows(t, s.db.DB, "records", userID))
}

func TestCategoryRepository_DeleteIncomeCascades(t *testing.T) {
	s, userID := newTestStorages(t)
	ctx := context.Background()

	_, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: userID, Name: "工资", Type: models.CategoryIncome})
	require.NoError(t, err)
	_, err = s.EntryRepository.AddEntry(ctx, models.KindIncome, models.Entry{UserID: userID, Category: "工资", Amount: amount("8000"), Date: "2025-06-01"})
	require.NoError(t, err)

	_, err = s.CategoryRepository.DeleteCategory(ctx, userID, "工资")
	require.NoError(t, err)
	assert.Equal(t, 0, countRows(t, s.db.DB, "income", userID))
	assert.Equal(t, 0, countRows(t, s.db.DB, "categories", userID))
}

func TestCategoryRepository_Postgres_DeleteRollsBackOnFailure(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewCategoryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, user_id, name, type FROM categories WHERE .*name = \$1 AND user_id = \$2`).
		WithArgs("餐饮", int64(7)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(3, 7, "餐饮", "expense"))
	mock.ExpectExec(`DELETE FROM records`).WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.DeleteCategory(context.Background(), 7, "餐饮")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_Postgres_DeleteRetriesDeadlock(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewCategoryRepository(db, logger.Nop())

	row := func() *sqlmock.Rows { return sqlmock.NewRows(categoryColumns).AddRow(3, 7, "工资", "income") }

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM categories`).WillReturnRows(row())
	mock.ExpectExec(`DELETE FROM income`).WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM categories`).WillReturnRows(row())
	mock.ExpectExec(`DELETE FROM income`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.DeleteCategory(context.Background(), 7, "工资")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryIncome, deleted.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
