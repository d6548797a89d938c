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
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
)

const analysisTopN = 5

func (h *ledgerIntents) addCategory(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	_, err := h.categories.CreateCategory(ctx, models.Category{
		UserID: call.UserID,
		Name:   args.Category,
		Type:   args.CategoryType,
	})
	if errors.Is(err, store.ErrCategoryAlreadyExists) {
		existing, findErr := h.categories.FindCategory(ctx, call.UserID, args.Category)
		if findErr != nil {
			return h.storeFailure(intent.AddCategory, call.UserID, findErr)
		}
		return failed(intent.AddCategory, fmt.Sprintf(app.ReplyCategoryExists, existing.Name, existing.Type.Label()))
	}
	if err != nil {
		return h.storeFailure(intent.AddCategory, call.UserID, err)
	}

	return succeeded(intent.AddCategory, fmt.Sprintf(app.ReplyCategoryAdded, args.Category))
}

// deleteCategory removes the category with its records and budgets, or its
// income rows. Deleting an unknown category changes nothing.
func (h *ledgerIntents) deleteCategory(ctx context.Context, call IntentCall) models.HandlerResult {
	name := call.Args.Category

	_, err := h.categories.DeleteCategory(ctx, call.UserID, name)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return failed(intent.DeleteCategory, fmt.Sprintf(app.ReplyCategoryNotFound, name))
	}
	if err != nil {
		return h.storeFailure(intent.DeleteCategory, call.UserID, err)
	}

	return succeeded(intent.DeleteCategory, fmt.Sprintf(app.ReplyCategoryDeleted, name))
}

// analyzeSpend reports the top categories of the month and of all time,
// for expenses and for income.
func (h *ledgerIntents) analyzeSpend(ctx context.Context, call IntentCall) models.HandlerResult {
	month := call.Args.Month

	sections := []struct {
		kind   models.EntryKind
		month  string
		header string
	}{
		{kind: models.KindExpense, month: month, header: fmt.Sprintf(app.ReplySpendHeader, month)},
		{kind: models.KindExpense, header: app.ReplySpendAllTime},
		{kind: models.KindIncome, month: month, header: fmt.Sprintf(app.ReplyIncomeMonth, month)},
		{kind: models.KindIncome, header: app.ReplyIncomeAllTime},
	}

	var b strings.Builder
	for _, section := range sections {
		totals, err := h.entries.TotalsByCategory(ctx, section.kind, models.EntryFilter{
			UserID: call.UserID,
			Month:  section.month,
			Limit:  analysisTopN,
		})
		if err != nil {
			return h.storeFailure(intent.AnalyzeSpend, call.UserID, err)
		}
		if len(totals) == 0 {
			continue
		}

		b.WriteString(section.header)
		for _, t := range totals {
			fmt.Fprintf(&b, app.ReplySpendRow, t.Category, t.Total.StringFixed(2))
		}
	}

	if b.Len() == 0 {
		return succeeded(intent.AnalyzeSpend, app.ReplyNoSpending)
	}

	b.WriteString(app.ReplySpendFooter)
	return succeeded(intent.AnalyzeSpend, strings.TrimLeft(b.String(), "\n"))
}
