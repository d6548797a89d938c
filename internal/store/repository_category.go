// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
)

const deleteCategoryAttempts = 3

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) FindCategory(ctx context.Context, userID int64, name string) (models.Category, error) {
	return findCategory(ctx, r.db.builder, r.db, userID, name)
}

// CreateCategory inserts a new category. A name already registered for the
// user, under any type, yields [ErrCategoryAlreadyExists].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	if category.Type == "" {
		category.Type = models.CategoryExpense
	}

	query, args, err := r.db.builder.Insert("categories").
		Columns("user_id", "name", "type").
		Values(category.UserID, category.Name, string(category.Type)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Category{}, ErrCategoryAlreadyExists
		}
		log.Err(err).
			Str("func", "*categoryRepository.CreateCategory").
			Int64("user_id", category.UserID).
			Str("category", category.Name).
			Msg("failed to insert category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return category, nil
}

func (r *categoryRepository) EnsureCategory(ctx context.Context, userID int64, name string, categoryType models.CategoryType) (models.Category, error) {
	existing, err := r.FindCategory(ctx, userID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return models.Category{}, err
	}

	created, err := r.CreateCategory(ctx, models.Category{UserID: userID, Name: name, Type: categoryType})
	if errors.Is(err, ErrCategoryAlreadyExists) {
		// lost a race with a concurrent insert
		return r.FindCategory(ctx, userID, name)
	}
	return created, err
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", userID).Msg("failed to list categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// DeleteCategory removes an expense category with its records and budgets,
// or an income category with its income rows. The category row goes last.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID int64, name string) (models.Category, error) {
	log := logger.FromContext(ctx)

	var deleted models.Category
	err := r.db.inTx(ctx, deleteCategoryAttempts, func(tx *sql.Tx) error {
		category, err := findCategory(ctx, r.db.builder, tx, userID, name)
		if err != nil {
			return err
		}

		dependents := []string{models.KindIncome.Table()}
		if category.Type == models.CategoryExpense {
			dependents = []string{models.KindExpense.Table(), "budgets"}
		}

		for _, table := range dependents {
			if err = execDelete(ctx, tx, r.db.builder.Delete(table).
				Where(sq.Eq{"user_id": userID, "category": name})); err != nil {
				return err
			}
		}

		if err = execDelete(ctx, tx, r.db.builder.Delete("categories").
			Where(sq.Eq{"id": category.ID})); err != nil {
			return err
		}

		deleted = category
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCategoryNotFound) {
			log.Err(err).
				Str("func", "*categoryRepository.DeleteCategory").
				Int64("user_id", userID).
				Str("category", name).
				Msg("failed to delete category")
		}
		return models.Category{}, err
	}

	return deleted, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findCategory(ctx context.Context, b sq.StatementBuilderType, q queryRower, userID int64, name string) (models.Category, error) {
	query, args, err := b.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"user_id": userID, "name": name}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	err = q.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}

func execDelete(ctx context.Context, tx *sql.Tx, q sq.DeleteBuilder) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
