// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/utils"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// budgetRequest is the body of POST /api/budgets. The month is always the
// current one.
type budgetRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Cycle    string          `json:"cycle"`
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	h.listEntries(w, r, models.KindExpense)
}

func (h *Handler) listIncome(w http.ResponseWriter, r *http.Request) {
	h.listEntries(w, r, models.KindIncome)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	h.deleteEntry(w, r, models.KindExpense)
}

func (h *Handler) deleteIncome(w http.ResponseWriter, r *http.Request) {
	h.deleteEntry(w, r, models.KindIncome)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request, kind models.EntryKind) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.services.LedgerService.ListEntries(r.Context(), kind, models.EntryFilter{
		UserID: userID,
		Month:  r.URL.Query().Get("month"),
	})
	if err != nil {
		writeServiceError(w, r, err, "listing "+kind.Table()+" failed")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request, kind models.EntryKind) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid entry id")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.LedgerService.DeleteEntry(r.Context(), kind, userID, entryID); err != nil {
		writeServiceError(w, r, err, "deleting from "+kind.Table()+" failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	categories, err := h.services.LedgerService.ListCategories(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "listing categories failed")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(categories), http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	category.UserID = userID

	created, err := h.services.LedgerService.CreateCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err, "creating category failed")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// deleteCategory removes the category with its records and budgets. An
// unknown name answers 404.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.LedgerService.DeleteCategory(r.Context(), userID, chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, r, err, "deleting category failed")
		return
	}

	_, _ = utils.WriteJSON(w, deleted, http.StatusOK)
}

func (h *Handler) listBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	budgets, err := h.services.LedgerService.ListBudgets(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err, "listing budgets failed")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(budgets), http.StatusOK)
}

func (h *Handler) setBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	budget, err := h.services.LedgerService.SetBudget(r.Context(), models.Budget{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Cycle:    req.Cycle,
	})
	if err != nil {
		writeServiceError(w, r, err, "setting budget failed")
		return
	}

	_, _ = utils.WriteJSON(w, budget, http.StatusOK)
}

func (h *Handler) monthlyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	totals, err := h.services.LedgerService.MonthlyTotals(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "monthly stats failed")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(totals), http.StatusOK)
}

func (h *Handler) categoryStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	totals, err := h.services.LedgerService.CategoryTotals(r.Context(), userID, r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err, "category stats failed")
		return
	}

	_, _ = utils.WriteJSON(w, nonNil(totals), http.StatusOK)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
