// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

// Canonical parameter keys, as the assistant is prompted to emit them.
const (
	ParamCategory    = "分类"
	ParamAmount      = "金额"
	ParamBudget      = "预算"
	ParamNote        = "备注"
	ParamDate        = "时间"
	ParamCycle       = "周期"
	ParamType        = "类型"
	ParamMonth       = "月份"
	ParamTotalBudget = "总预算"
	ParamTimeRange   = "时间范围"
	ParamAll         = "全部"
)

var paramAliases = map[string]string{
	"category":     ParamCategory,
	"来源":           ParamCategory,
	"amount":       ParamAmount,
	"budget":       ParamBudget,
	"note":         ParamNote,
	"date":         ParamDate,
	"日期":           ParamDate,
	"cycle":        ParamCycle,
	"type":         ParamType,
	"month":        ParamMonth,
	"total_budget": ParamTotalBudget,
	"time_range":   ParamTimeRange,
	"all":          ParamAll,
}

// intentSchema lists the parameters one intent understands.
type intentSchema struct {
	required []string
	optional []string
	// budgetAmount lets 预算 stand in for 金额.
	budgetAmount bool
	// currentMonth pins Month to the current month regardless of input.
	currentMonth bool
}

var intentSchemas = map[string]intentSchema{
	intent.AddRecord: {
		required: []string{ParamCategory, ParamAmount},
		optional: []string{ParamNote, ParamDate},
	},
	intent.AddIncome: {
		required: []string{ParamCategory, ParamAmount},
		optional: []string{ParamNote, ParamDate},
	},
	intent.SetBudget: {
		required:     []string{ParamCategory, ParamAmount},
		optional:     []string{ParamCycle},
		budgetAmount: true,
		currentMonth: true,
	},
	intent.UpdateBudget: {
		required:     []string{ParamCategory, ParamAmount},
		optional:     []string{ParamCycle},
		budgetAmount: true,
		currentMonth: true,
	},
	intent.AnalyzeSpend: {
		optional: []string{ParamMonth},
	},
	intent.AddCategory: {
		required: []string{ParamCategory},
		optional: []string{ParamType},
	},
	intent.DeleteCategory: {
		required: []string{ParamCategory},
	},
	intent.BudgetRemain: {
		optional: []string{ParamCategory, ParamMonth},
	},
	intent.SuggestBudgets: {
		optional:     []string{ParamTotalBudget},
		currentMonth: true,
	},
	intent.QueryIncome: {
		optional: []string{ParamCategory, ParamTimeRange, ParamAll},
	},
}

type intentBinder struct {
	now func() time.Time
}

// NewIntentBinder returns the binder used by the intent registry.
func NewIntentBinder() IntentBinder {
	return &intentBinder{now: time.Now}
}

// Bind implements IntentBinder.
func (b *intentBinder) Bind(_ context.Context, name string, params map[string]string) (models.IntentArgs, error) {
	schema, ok := intentSchemas[name]
	if !ok {
		return models.IntentArgs{}, fmt.Errorf("%w: %s", ErrUnknownIntent, name)
	}

	values := canonicalParams(params, schema.budgetAmount)
	for _, key := range schema.required {
		if values[key] == "" {
			return models.IntentArgs{}, fmt.Errorf("%w: %s", ErrMissingParameter, key)
		}
	}

	now := b.now()
	args := models.IntentArgs{
		Category: values[ParamCategory],
		Note:     values[ParamNote],
		Cycle:    values[ParamCycle],
	}

	var err error
	for _, key := range append(append([]string(nil), schema.required...), schema.optional...) {
		switch key {
		case ParamAmount:
			args.Amount, err = nullAmount(values[key])
		case ParamTotalBudget:
			args.TotalBudget, err = nullAmount(values[key])
		case ParamDate:
			args.Date, err = ParseDate(values[key], now)
		case ParamMonth:
			args.Month, err = ParseMonth(values[key], now)
		case ParamTimeRange:
			args.TimeRange, err = ParseTimeRange(values[key], now)
		case ParamAll:
			args.All = ParseBool(values[key])
		case ParamType:
			var valid bool
			if args.CategoryType, valid = models.ParseCategoryType(values[key]); !valid {
				err = fmt.Errorf("%w: %q", ErrInvalidCategoryType, values[key])
			}
		case ParamCycle:
			if args.Cycle == "" {
				args.Cycle = models.DefaultBudgetCycle
			}
		}
		if err != nil {
			return models.IntentArgs{}, err
		}
	}

	if schema.currentMonth {
		args.Month = now.Format(monthLayout)
	}

	return args, nil
}

// canonicalParams maps alias keys to canonical ones and trims values.
// A canonical key wins over its alias when both are present.
func canonicalParams(params map[string]string, budgetAmount bool) map[string]string {
	values := make(map[string]string, len(params))
	aliased := make(map[string]string)

	for key, value := range params {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		canonical, isAlias := paramAliases[strings.ToLower(key)]
		if isAlias {
			key = canonical
		}
		if budgetAmount && key == ParamBudget {
			key, isAlias = ParamAmount, true
		}

		if isAlias {
			aliased[key] = value
			continue
		}
		values[key] = value
	}

	for key, value := range aliased {
		if values[key] == "" {
			values[key] = value
		}
	}

	return values
}

func nullAmount(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
