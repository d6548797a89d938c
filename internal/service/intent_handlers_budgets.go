// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
)

func (h *ledgerIntents) setBudget(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	if msg, err := h.ensureTyped(ctx, call.UserID, args.Category, models.CategoryExpense); err != nil {
		return h.reject(intent.SetBudget, call.UserID, msg, err)
	}

	budget, err := h.budgets.UpsertBudget(ctx, models.Budget{
		UserID:   call.UserID,
		Category: args.Category,
		Amount:   args.Amount.Decimal,
		Cycle:    args.Cycle,
		Month:    args.Month,
	})
	if err != nil {
		return h.storeFailure(intent.SetBudget, call.UserID, err)
	}

	return succeeded(intent.SetBudget, fmt.Sprintf(app.ReplyBudgetSet, budget.Category, budget.Cycle, budget.Amount.String()))
}

// updateBudget changes the current-month budget of a category. A category
// without a budget row is left untouched.
func (h *ledgerIntents) updateBudget(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	if msg, err := h.checkTyped(ctx, call.UserID, args.Category, models.CategoryExpense); err != nil {
		return h.reject(intent.UpdateBudget, call.UserID, msg, err)
	}

	found, err := h.budgets.UpdateBudget(ctx, models.Budget{
		UserID:   call.UserID,
		Category: args.Category,
		Amount:   args.Amount.Decimal,
		Cycle:    args.Cycle,
		Month:    args.Month,
	})
	if err != nil {
		return h.storeFailure(intent.UpdateBudget, call.UserID, err)
	}
	if !found {
		return succeeded(intent.UpdateBudget, fmt.Sprintf(app.ReplyNoBudgetFor, args.Category, args.Month))
	}

	return succeeded(intent.UpdateBudget, fmt.Sprintf(app.ReplyBudgetUpdated, args.Category, args.Amount.Decimal.String(), args.Cycle))
}

// budgetRemain reports amount minus spent for every expense budget of the
// month, or for one category.
func (h *ledgerIntents) budgetRemain(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	rows, err := h.budgets.ListBudgetStatus(ctx, call.UserID, args.Month, args.Category)
	if err != nil {
		return h.storeFailure(intent.BudgetRemain, call.UserID, err)
	}

	if len(rows) == 0 {
		if args.Category != "" {
			return succeeded(intent.BudgetRemain, fmt.Sprintf(app.ReplyNoBudgetFor, args.Category, args.Month))
		}
		return succeeded(intent.BudgetRemain, fmt.Sprintf(app.ReplyNoBudgets, args.Month))
	}

	var b strings.Builder
	fmt.Fprintf(&b, app.ReplyBudgetRemainHd, args.Month)
	for _, row := range rows {
		fmt.Fprintf(&b, app.ReplyBudgetRemainRw,
			row.Category, row.Amount.StringFixed(2), row.Spent.StringFixed(2), row.Remaining.StringFixed(2))
	}

	return succeeded(intent.BudgetRemain, strings.TrimRight(b.String(), "\n"))
}

// suggestBudgets asks the assistant to allocate budgets over this month's
// spending and stores one budget per parsed category, amounts as given.
func (h *ledgerIntents) suggestBudgets(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	spending, err := h.entries.TotalsByCategory(ctx, models.KindExpense, models.EntryFilter{UserID: call.UserID, Month: args.Month})
	if err != nil {
		return h.storeFailure(intent.SuggestBudgets, call.UserID, err)
	}
	if len(spending) == 0 {
		return failed(intent.SuggestBudgets, app.ReplySuggestNoData)
	}

	advice := h.assistant.AdviseBudgets(ctx, call.LLM, spending, args.TotalBudget)
	suggestions, err := intent.ParseBudgetAdvice(advice)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "*ledgerIntents.suggestBudgets").
			Int64("user_id", call.UserID).
			Str("advice", advice).
			Msg("budget advice not understood")
		return failed(intent.SuggestBudgets, app.ReplySuggestParseError)
	}

	var written, skipped strings.Builder
	for _, s := range suggestions {
		amount, err := validators.ParseAmount(s.Amount)
		if err != nil {
			continue
		}

		if _, err := h.ensureTyped(ctx, call.UserID, s.Category, models.CategoryExpense); err != nil {
			if !errors.Is(err, ErrCategoryTypeConflict) {
				return h.storeFailure(intent.SuggestBudgets, call.UserID, err)
			}
			fmt.Fprintf(&skipped, app.ReplySuggestSkipped, s.Category)
			continue
		}

		budget, err := h.budgets.UpsertBudget(ctx, models.Budget{
			UserID:   call.UserID,
			Category: s.Category,
			Amount:   amount,
			Cycle:    models.DefaultBudgetCycle,
			Month:    args.Month,
		})
		if err != nil {
			return h.storeFailure(intent.SuggestBudgets, call.UserID, err)
		}

		fmt.Fprintf(&written, app.ReplySuggestRow, budget.Category, budget.Amount.String())
	}

	if written.Len() == 0 {
		if skipped.Len() == 0 {
			return failed(intent.SuggestBudgets, app.ReplySuggestParseError)
		}
		return failed(intent.SuggestBudgets, strings.TrimRight(skipped.String(), "\n"))
	}
	return succeeded(intent.SuggestBudgets, strings.TrimRight(app.ReplySuggestHeader+written.String()+skipped.String(), "\n"))
}
