// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryType tells whether a category groups expenses or income. A
// category keeps its type for its whole life: the same name can never be
// reused under the opposite type.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// ParseCategoryType accepts both the stored form and the Chinese labels the
// assistant produces. An empty string defaults to CategoryExpense.
func ParseCategoryType(s string) (CategoryType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "expense", "支出":
		return CategoryExpense, true
	case "income", "收入":
		return CategoryIncome, true
	default:
		return "", false
	}
}

// Label returns the user-facing name of the type.
func (t CategoryType) Label() string {
	if t == CategoryIncome {
		return "收入"
	}
	return "支出"
}

type Category struct {
	ID     int64        `json:"id"`
	UserID int64        `json:"-"`
	Name   string       `json:"name"`
	Type   CategoryType `json:"type"`
}

// EntryKind selects the ledger table an Entry belongs to.
type EntryKind int

const (
	KindExpense EntryKind = iota
	KindIncome
)

// Table returns the relational table holding entries of this kind.
func (k EntryKind) Table() string {
	if k == KindIncome {
		return "income"
	}
	return "records"
}

// CategoryType returns the only category type entries of this kind may use.
func (k EntryKind) CategoryType() CategoryType {
	if k == KindIncome {
		return CategoryIncome
	}
	return CategoryExpense
}

// Entry is a single expense record or income row. Month and Year are
// derived from Date at write time and never edited on their own.
type Entry struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"-"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
	Date     string          `json:"date"`
	Month    string          `json:"month"`
	Year     string          `json:"year"`
}

// FillPeriod sets Month (YYYY-MM) and Year (YYYY) from Date (YYYY-MM-DD).
func (e *Entry) FillPeriod() {
	if len(e.Date) >= 7 {
		e.Month = e.Date[:7]
	}
	if len(e.Date) >= 4 {
		e.Year = e.Date[:4]
	}
}

// EntryFilter narrows entry queries. Zero-value fields are ignored.
type EntryFilter struct {
	UserID   int64
	Category string
	Month    string
	Year     string
	Limit    uint64
}

// CategoryTotal is a summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is a summed amount for one YYYY-MM month.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DefaultBudgetCycle is the cycle label stored when none is given.
const DefaultBudgetCycle = "月"

// Budget is a spending limit for one expense category in one month.
// (UserID, Category, Month) is unique; writes are upserts.
type Budget struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"-"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Cycle    string          `json:"cycle"`
	Month    string          `json:"month"`
}

// BudgetStatus is a budget row joined with what was already spent in its
// month.
type BudgetStatus struct {
	Budget
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
}
