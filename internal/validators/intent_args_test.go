// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBinder() *intentBinder {
	return &intentBinder{now: func() time.Time { return fixedNow }}
}

// ---------------------------------------------------------------------------
// entries
// ---------------------------------------------------------------------------

func TestBind_AddRecord(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.AddRecord, map[string]string{
		"分类": "餐饮", "金额": "25", "备注": "麦当劳", "时间": "2025-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "餐饮", args.Category)
	require.True(t, args.Amount.Valid)
	assert.Equal(t, "25", args.Amount.Decimal.String())
	assert.Equal(t, "麦当劳", args.Note)
	assert.Equal(t, "2025-06-01", args.Date)
}

func TestBind_AddRecord_DateDefaultsToToday(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.AddIncome, map[string]string{
		"category": "工资", "amount": "¥8000",
	})
	require.NoError(t, err)

	assert.Equal(t, "工资", args.Category)
	assert.Equal(t, "8000", args.Amount.Decimal.String())
	assert.Equal(t, "2025-06-08", args.Date)
}

func TestBind_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		params map[string]string
	}{
		{name: "no amount", intent: intent.AddRecord, params: map[string]string{"分类": "餐饮"}},
		{name: "blank category", intent: intent.AddIncome, params: map[string]string{"分类": "  ", "金额": "5"}},
		{name: "budget without amount", intent: intent.SetBudget, params: map[string]string{"分类": "餐饮"}},
		{name: "delete without name", intent: intent.DeleteCategory, params: map[string]string{}},
		{name: "nil params", intent: intent.AddCategory, params: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestBinder().Bind(context.Background(), tt.intent, tt.params)
			assert.ErrorIs(t, err, ErrMissingParameter)
		})
	}
}

func TestBind_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		intent  string
		params  map[string]string
		wantErr error
	}{
		{name: "amount", intent: intent.AddRecord, params: map[string]string{"分类": "餐饮", "金额": "很多"}, wantErr: ErrInvalidAmount},
		{name: "date", intent: intent.AddRecord, params: map[string]string{"分类": "餐饮", "金额": "1", "时间": "someday"}, wantErr: ErrInvalidDate},
		{name: "month", intent: intent.AnalyzeSpend, params: map[string]string{"月份": "June"}, wantErr: ErrInvalidMonth},
		{name: "type", intent: intent.AddCategory, params: map[string]string{"分类": "理财", "类型": "asset"}, wantErr: ErrInvalidCategoryType},
		{name: "time range", intent: intent.QueryIncome, params: map[string]string{"时间范围": "recently"}, wantErr: ErrInvalidTimeRange},
		{name: "total", intent: intent.SuggestBudgets, params: map[string]string{"总预算": "-1"}, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestBinder().Bind(context.Background(), tt.intent, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBind_UnknownIntent(t *testing.T) {
	_, err := newTestBinder().Bind(context.Background(), "transfer", map[string]string{})
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

// ---------------------------------------------------------------------------
// budgets
// ---------------------------------------------------------------------------

func TestBind_BudgetAcceptsBudgetKey(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.SetBudget, map[string]string{
		"分类": "交通", "预算": "300",
	})
	require.NoError(t, err)

	assert.Equal(t, "300", args.Amount.Decimal.String())
	assert.Equal(t, models.DefaultBudgetCycle, args.Cycle)
	assert.Equal(t, "2025-06", args.Month)
}

func TestBind_CanonicalKeyWinsOverAlias(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.UpdateBudget, map[string]string{
		"分类": "交通", "金额": "500", "预算": "300", "周期": "周",
	})
	require.NoError(t, err)

	assert.Equal(t, "500", args.Amount.Decimal.String())
	assert.Equal(t, "周", args.Cycle)
}

func TestBind_BudgetKeyIgnoredOutsideBudgetIntents(t *testing.T) {
	_, err := newTestBinder().Bind(context.Background(), intent.AddRecord, map[string]string{
		"分类": "餐饮", "预算": "300",
	})
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestBind_SuggestBudgets(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.SuggestBudgets, map[string]string{"总预算": "3000元"})
	require.NoError(t, err)
	require.True(t, args.TotalBudget.Valid)
	assert.Equal(t, "3000", args.TotalBudget.Decimal.String())
	assert.Equal(t, "2025-06", args.Month)

	args, err = newTestBinder().Bind(context.Background(), intent.SuggestBudgets, nil)
	require.NoError(t, err)
	assert.False(t, args.TotalBudget.Valid)
}

// ---------------------------------------------------------------------------
// reads
// ---------------------------------------------------------------------------

func TestBind_ReadIntentsDefaultMonth(t *testing.T) {
	for _, name := range []string{intent.AnalyzeSpend, intent.BudgetRemain} {
		args, err := newTestBinder().Bind(context.Background(), name, map[string]string{})
		require.NoError(t, err, name)
		assert.Equal(t, "2025-06", args.Month, name)
	}
}

func TestBind_QueryIncome(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.QueryIncome, map[string]string{
		"全部": "是", "时间范围": "2025",
	})
	require.NoError(t, err)
	assert.True(t, args.All)
	assert.Equal(t, "2025", args.TimeRange)
	assert.Empty(t, args.Category)
}

func TestBind_AddCategoryType(t *testing.T) {
	args, err := newTestBinder().Bind(context.Background(), intent.AddCategory, map[string]string{"分类": "工资", "类型": "收入"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryIncome, args.CategoryType)

	args, err = newTestBinder().Bind(context.Background(), intent.AddCategory, map[string]string{"分类": "零食"})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryExpense, args.CategoryType)
}

func TestBind_EveryIntentHasSchema(t *testing.T) {
	for _, name := range intent.Names {
		_, ok := intentSchemas[name]
		assert.True(t, ok, name)
	}
}
