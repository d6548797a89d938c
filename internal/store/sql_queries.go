// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-chat/models"
)

var (
	userColumns     = []string{"user_id", "username", "password_hash", "is_admin", "created_at"}
	categoryColumns = []string{"id", "user_id", "name", "type"}
	entryColumns    = []string{"id", "user_id", "category", "amount", "note", "date", "month", "year"}
	budgetColumns   = []string{"id", "user_id", "category", "amount", "cycle", "month"}
)

const (
	upsertBudgetSuffix = `ON CONFLICT (user_id, category, month) DO UPDATE
		SET amount = excluded.amount, cycle = excluded.cycle
		RETURNING id`

	upsertLLMConfigSuffix = `ON CONFLICT (user_id) DO UPDATE
		SET api_url = excluded.api_url, api_key = excluded.api_key, model = excluded.model`

	// spent in the budget's own month, expense records only
	budgetSpentColumn = `COALESCE((SELECT SUM(r.amount) FROM records r
		WHERE r.user_id = b.user_id AND r.category = b.category AND r.month = b.month), 0) AS spent`
)

// entryWhere renders the non-zero fields of filter as conditions.
func entryWhere(filter models.EntryFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}
	if filter.Category != "" {
		where = append(where, sq.Eq{"category": filter.Category})
	}
	if filter.Month != "" {
		where = append(where, sq.Eq{"month": filter.Month})
	}
	if filter.Year != "" {
		where = append(where, sq.Eq{"year": filter.Year})
	}
	return where
}

func buildListEntriesQuery(b sq.StatementBuilderType, kind models.EntryKind, filter models.EntryFilter) (string, []any, error) {
	q := b.Select(entryColumns...).
		From(kind.Table()).
		Where(entryWhere(filter)).
		OrderBy("date DESC", "id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q.ToSql()
}

func buildSumEntriesQuery(b sq.StatementBuilderType, kind models.EntryKind, filter models.EntryFilter) (string, []any, error) {
	return b.Select("COALESCE(SUM(amount), 0)").
		From(kind.Table()).
		Where(entryWhere(filter)).
		ToSql()
}

func buildTotalsByCategoryQuery(b sq.StatementBuilderType, kind models.EntryKind, filter models.EntryFilter) (string, []any, error) {
	q := b.Select("category", "SUM(amount) AS total").
		From(kind.Table()).
		Where(entryWhere(filter)).
		GroupBy("category").
		OrderBy("total DESC", "category ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q.ToSql()
}

func buildTotalsByMonthQuery(b sq.StatementBuilderType, kind models.EntryKind, filter models.EntryFilter) (string, []any, error) {
	return b.Select("month", "SUM(amount) AS total").
		From(kind.Table()).
		Where(entryWhere(filter)).
		GroupBy("month").
		OrderBy("month DESC").
		ToSql()
}

func buildBudgetStatusQuery(b sq.StatementBuilderType, userID int64, month, category string) (string, []any, error) {
	where := sq.And{
		sq.Eq{"b.user_id": userID},
		sq.Eq{"b.month": month},
		sq.Eq{"c.type": string(models.CategoryExpense)},
	}
	if category != "" {
		where = append(where, sq.Eq{"b.category": category})
	}

	return b.Select("b.id", "b.user_id", "b.category", "b.amount", "b.cycle", "b.month", budgetSpentColumn).
		From("budgets b").
		Join("categories c ON c.user_id = b.user_id AND c.name = b.category").
		Where(where).
		OrderBy("b.category ASC").
		ToSql()
}
