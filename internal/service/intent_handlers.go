// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
)

// ledgerIntents implements the domain handlers of every canonical intent.
// Each method is an IntentHandler.
type ledgerIntents struct {
	categories store.CategoryRepository
	entries    store.EntryRepository
	budgets    store.BudgetRepository
	assistant  Assistant

	logger *logger.Logger
}

func newLedgerIntents(storages *store.Storages, assistant Assistant, log *logger.Logger) *ledgerIntents {
	return &ledgerIntents{
		categories: storages.CategoryRepository,
		entries:    storages.EntryRepository,
		budgets:    storages.BudgetRepository,
		assistant:  assistant,
		logger:     log.Component("intent_handlers"),
	}
}

// register adds every handler to r.
func (h *ledgerIntents) register(r *IntentRegistry) error {
	handlers := map[string]IntentHandler{
		intent.AddRecord:      h.addRecord,
		intent.AddIncome:      h.addIncome,
		intent.SetBudget:      h.setBudget,
		intent.UpdateBudget:   h.updateBudget,
		intent.AnalyzeSpend:   h.analyzeSpend,
		intent.AddCategory:    h.addCategory,
		intent.DeleteCategory: h.deleteCategory,
		intent.BudgetRemain:   h.budgetRemain,
		intent.SuggestBudgets: h.suggestBudgets,
		intent.QueryIncome:    h.queryIncome,
	}

	for _, name := range intent.Names {
		if err := r.Register(name, handlers[name]); err != nil {
			return err
		}
	}
	return nil
}

// ensureTyped returns the category called name, creating it with want when
// unseen. A category of the opposite type yields ErrCategoryTypeConflict and
// the conflict reply.
func (h *ledgerIntents) ensureTyped(ctx context.Context, userID int64, name string, want models.CategoryType) (string, error) {
	category, err := h.categories.EnsureCategory(ctx, userID, name, want)
	if err != nil {
		return app.ReplyHandlerFailed, err
	}
	if category.Type != want {
		return typeConflictReply(name, category.Type, want), ErrCategoryTypeConflict
	}
	return "", nil
}

// checkTyped is ensureTyped without the create: an unknown category passes.
func (h *ledgerIntents) checkTyped(ctx context.Context, userID int64, name string, want models.CategoryType) (string, error) {
	category, err := h.categories.FindCategory(ctx, userID, name)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return "", nil
	}
	if err != nil {
		return app.ReplyHandlerFailed, err
	}
	if category.Type != want {
		return typeConflictReply(name, category.Type, want), ErrCategoryTypeConflict
	}
	return "", nil
}

func typeConflictReply(name string, have, want models.CategoryType) string {
	return fmt.Sprintf(app.ReplyCategoryTypeConflict, name, have.Label(), want.Label())
}

// storeFailure logs err and returns the generic failure result.
func (h *ledgerIntents) storeFailure(name string, userID int64, err error) models.HandlerResult {
	h.logger.Err(err).
		Str("func", "*ledgerIntents."+name).
		Int64("user_id", userID).
		Msg("intent handler failed")
	return failed(name, app.ReplyHandlerFailed)
}

// reject turns the outcome of ensureTyped or checkTyped into a result.
func (h *ledgerIntents) reject(name string, userID int64, reply string, err error) models.HandlerResult {
	if errors.Is(err, ErrCategoryTypeConflict) {
		return failed(name, reply)
	}
	return h.storeFailure(name, userID, err)
}
