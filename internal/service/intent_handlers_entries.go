// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

const recentIncomeLimit = 10

func (h *ledgerIntents) addRecord(ctx context.Context, call IntentCall) models.HandlerResult {
	return h.addEntry(ctx, intent.AddRecord, models.KindExpense, app.ReplyRecordAdded, call)
}

func (h *ledgerIntents) addIncome(ctx context.Context, call IntentCall) models.HandlerResult {
	return h.addEntry(ctx, intent.AddIncome, models.KindIncome, app.ReplyIncomeAdded, call)
}

func (h *ledgerIntents) addEntry(ctx context.Context, name string, kind models.EntryKind, reply string, call IntentCall) models.HandlerResult {
	args := call.Args

	if msg, err := h.ensureTyped(ctx, call.UserID, args.Category, kind.CategoryType()); err != nil {
		return h.reject(name, call.UserID, msg, err)
	}

	entry, err := h.entries.AddEntry(ctx, kind, models.Entry{
		UserID:   call.UserID,
		Category: args.Category,
		Amount:   args.Amount.Decimal,
		Note:     args.Note,
		Date:     args.Date,
	})
	if err != nil {
		return h.storeFailure(name, call.UserID, err)
	}

	return succeeded(name, fmt.Sprintf(reply, entry.Category, entry.Amount.String(), entry.Note, entry.Date))
}

// queryIncome lists the most recent income rows when the all flag is set,
// otherwise sums income filtered by period and category.
func (h *ledgerIntents) queryIncome(ctx context.Context, call IntentCall) models.HandlerResult {
	args := call.Args

	if args.All {
		rows, err := h.entries.ListEntries(ctx, models.KindIncome, models.EntryFilter{UserID: call.UserID, Limit: recentIncomeLimit})
		if err != nil {
			return h.storeFailure(intent.QueryIncome, call.UserID, err)
		}
		if len(rows) == 0 {
			return succeeded(intent.QueryIncome, app.ReplyIncomeNone)
		}

		var b strings.Builder
		fmt.Fprintf(&b, app.ReplyIncomeRecentHd, len(rows))
		total := decimal.Zero
		for _, row := range rows {
			fmt.Fprintf(&b, app.ReplyIncomeRecentRow, row.Date, row.Category, row.Amount.StringFixed(2), row.Note)
			total = total.Add(row.Amount)
		}
		fmt.Fprintf(&b, app.ReplyIncomeRecentSum, total.StringFixed(2))

		return succeeded(intent.QueryIncome, b.String())
	}

	filter := models.EntryFilter{UserID: call.UserID, Category: args.Category}
	scope := ""
	switch len(args.TimeRange) {
	case len("2006-01"):
		filter.Month = args.TimeRange
		scope = args.TimeRange + " "
	case len("2006"):
		filter.Year = args.TimeRange
		scope = args.TimeRange + " 年"
	}
	if args.Category != "" {
		scope += "「" + args.Category + "」"
	}

	sum, err := h.entries.SumEntries(ctx, models.KindIncome, filter)
	if err != nil {
		return h.storeFailure(intent.QueryIncome, call.UserID, err)
	}

	return succeeded(intent.QueryIncome, fmt.Sprintf(app.ReplyIncomeSum, scope, sum.StringFixed(2)))
}
