// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
)

type budgetRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewBudgetRepository(db *DB, logger *logger.Logger) BudgetRepository {
	logger.Debug().Msg("creating budget repository")
	return &budgetRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertBudget inserts the (user, category, month) budget or replaces the
// amount and cycle of the existing one.
func (r *budgetRepository) UpsertBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	if budget.Cycle == "" {
		budget.Cycle = models.DefaultBudgetCycle
	}

	query, args, err := r.db.builder.Insert("budgets").
		Columns("user_id", "category", "amount", "cycle", "month").
		Values(budget.UserID, budget.Category, budget.Amount, budget.Cycle, budget.Month).
		Suffix(upsertBudgetSuffix).
		ToSql()
	if err != nil {
		return models.Budget{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&budget.ID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*budgetRepository.UpsertBudget").
			Int64("user_id", budget.UserID).
			Str("category", budget.Category).
			Str("month", budget.Month).
			Msg("failed to upsert budget")
		return models.Budget{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return budget, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, budget models.Budget) (bool, error) {
	if budget.Cycle == "" {
		budget.Cycle = models.DefaultBudgetCycle
	}

	query, args, err := r.db.builder.Update("budgets").
		Set("amount", budget.Amount).
		Set("cycle", budget.Cycle).
		Where(sq.Eq{"user_id": budget.UserID, "category": budget.Category, "month": budget.Month}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*budgetRepository.UpdateBudget").
			Int64("user_id", budget.UserID).
			Str("category", budget.Category).
			Msg("failed to update budget")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ListBudgets returns the user's budgets ordered by category. An empty
// month lists every month.
func (r *budgetRepository) ListBudgets(ctx context.Context, userID int64, month string) ([]models.Budget, error) {
	where := sq.Eq{"user_id": userID}
	if month != "" {
		where["month"] = month
	}

	query, args, err := r.db.builder.Select(budgetColumns...).
		From("budgets").
		Where(where).
		OrderBy("category ASC", "month DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*budgetRepository.ListBudgets").
			Int64("user_id", userID).
			Msg("failed to list budgets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0, 8)
	for rows.Next() {
		var b models.Budget
		if err = rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Cycle, &b.Month); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		budgets = append(budgets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return budgets, nil
}

// ListBudgetStatus computes Remaining = Amount - Spent per budget row.
func (r *budgetRepository) ListBudgetStatus(ctx context.Context, userID int64, month, category string) ([]models.BudgetStatus, error) {
	query, args, err := buildBudgetStatusQuery(r.db.builder, userID, month, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*budgetRepository.ListBudgetStatus").
			Int64("user_id", userID).
			Str("month", month).
			Msg("failed to query budget status")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	statuses := make([]models.BudgetStatus, 0, 8)
	for rows.Next() {
		var s models.BudgetStatus
		if err = rows.Scan(&s.ID, &s.UserID, &s.Category, &s.Amount, &s.Cycle, &s.Month, &s.Spent); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.Spent = s.Spent.Round(moneyPlaces)
		s.Remaining = s.Amount.Sub(s.Spent)
		statuses = append(statuses, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return statuses, nil
}
