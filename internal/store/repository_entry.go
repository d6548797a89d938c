// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

// money amounts are kept at cent precision; SQLite sums REAL values
const moneyPlaces = 2

type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// AddEntry inserts entry into the table of kind. Month and Year are derived
// from Date here, whatever the caller set.
func (r *entryRepository) AddEntry(ctx context.Context, kind models.EntryKind, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry.FillPeriod()

	query, args, err := r.db.builder.Insert(kind.Table()).
		Columns("user_id", "category", "amount", "note", "date", "month", "year").
		Values(entry.UserID, entry.Category, entry.Amount, entry.Note, entry.Date, entry.Month, entry.Year).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.AddEntry").
			Str("table", kind.Table()).
			Int64("user_id", entry.UserID).
			Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// ListEntries returns entries newest first.
func (r *entryRepository) ListEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.ListEntries").
			Str("table", kind.Table()).
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, 32)
	for rows.Next() {
		var e models.Entry
		if err = rows.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Note, &e.Date, &e.Month, &e.Year); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// SumEntries returns the total amount of matching entries, zero when none
// match.
func (r *entryRepository) SumEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSumEntriesQuery(r.db.builder, kind, filter)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total decimal.Decimal
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*entryRepository.SumEntries").
			Str("table", kind.Table()).
			Int64("user_id", filter.UserID).
			Msg("failed to sum entries")
		return decimal.Zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total.Round(moneyPlaces), nil
}

// TotalsByCategory groups matching entries by category, largest total
// first. filter.Limit caps the number of categories.
func (r *entryRepository) TotalsByCategory(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.CategoryTotal, error) {
	query, args, err := buildTotalsByCategoryQuery(r.db.builder, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*entryRepository.TotalsByCategory").
			Str("table", kind.Table()).
			Msg("failed to group entries by category")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make([]models.CategoryTotal, 0, 8)
	for rows.Next() {
		var t models.CategoryTotal
		if err = rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		t.Total = t.Total.Round(moneyPlaces)
		totals = append(totals, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}

// TotalsByMonth groups matching entries by month, newest month first.
func (r *entryRepository) TotalsByMonth(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.MonthTotal, error) {
	query, args, err := buildTotalsByMonthQuery(r.db.builder, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*entryRepository.TotalsByMonth").
			Str("table", kind.Table()).
			Msg("failed to group entries by month")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	totals := make([]models.MonthTotal, 0, 12)
	for rows.Next() {
		var t models.MonthTotal
		if err = rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		t.Total = t.Total.Round(moneyPlaces)
		totals = append(totals, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return totals, nil
}

// DeleteEntry removes one entry owned by userID.
func (r *entryRepository) DeleteEntry(ctx context.Context, kind models.EntryKind, userID, entryID int64) error {
	query, args, err := r.db.builder.Delete(kind.Table()).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*entryRepository.DeleteEntry").
			Str("table", kind.Table()).
			Int64("entry_id", entryID).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
