package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
)

// LedgerValidationService checks request payloads before they reach the
// wrapped LedgerService. Read methods pass through.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService() LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewLedgerValidator(),
	}
}

func (v *LedgerValidationService) ListEntries(ctx context.Context, kind models.EntryKind, filter models.EntryFilter) ([]models.Entry, error) {
	return v.inner.ListEntries(ctx, kind, filter)
}

func (v *LedgerValidationService) DeleteEntry(ctx context.Context, kind models.EntryKind, userID, entryID int64) error {
	if entryID <= 0 {
		return ErrInvalidDataProvided
	}
	return v.inner.DeleteEntry(ctx, kind, userID, entryID)
}

func (v *LedgerValidationService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return v.inner.ListCategories(ctx, userID)
}

func (v *LedgerValidationService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := v.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateCategory(ctx, category)
}

func (v *LedgerValidationService) DeleteCategory(ctx context.Context, userID int64, name string) (models.Category, error) {
	if err := v.validator.Validate(ctx, models.Category{Name: name}, validators.FieldCategoryName); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.DeleteCategory(ctx, userID, name)
}

func (v *LedgerValidationService) ListBudgets(ctx context.Context, userID int64, month string) ([]models.Budget, error) {
	if err := v.validator.Validate(ctx, models.Budget{Month: month}, validators.FieldMonth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ListBudgets(ctx, userID, month)
}

func (v *LedgerValidationService) SetBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	if err := v.validator.Validate(ctx, budget); err != nil {
		return models.Budget{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SetBudget(ctx, budget)
}

func (v *LedgerValidationService) MonthlyTotals(ctx context.Context, userID int64) ([]models.MonthTotal, error) {
	return v.inner.MonthlyTotals(ctx, userID)
}

func (v *LedgerValidationService) CategoryTotals(ctx context.Context, userID int64, month string) ([]models.CategoryTotal, error) {
	if err := v.validator.Validate(ctx, models.Budget{Month: month}, validators.FieldMonth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CategoryTotals(ctx, userID, month)
}

func (v *LedgerValidationService) Wrap(wrapper LedgerService) LedgerService {
	v.inner = wrapper
	return v
}
