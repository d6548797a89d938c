// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package intent

import "strings"

// Canonical intent names understood by the handler registry.
const (
	AddRecord      = "add_record"
	AddIncome      = "add_income"
	SetBudget      = "set_budget"
	UpdateBudget   = "update_budget"
	AnalyzeSpend   = "analyze_spend"
	AddCategory    = "add_category"
	DeleteCategory = "delete_category"
	BudgetRemain   = "budget_remain"
	SuggestBudgets = "suggest_budgets"
	QueryIncome    = "query_income"

	// Unknown is what the assistant falls back to when it cannot answer.
	Unknown = "unknown"
)

// Names lists every canonical intent in prompt order.
var Names = []string{
	AddRecord, AddIncome, SetBudget, UpdateBudget, AnalyzeSpend,
	AddCategory, DeleteCategory, BudgetRemain, SuggestBudgets, QueryIncome,
}

var aliases = map[string]string{
	"记录支出": AddRecord,
	"支出记录": AddRecord,
	"记账":   AddRecord,
	"记录收入": AddIncome,
	"收入记录": AddIncome,
	"设置预算": SetBudget,
	"更新预算": UpdateBudget,
	"修改预算": UpdateBudget,
	"消费分析": AnalyzeSpend,
	"支出分析": AnalyzeSpend,
	"添加分类": AddCategory,
	"新增分类": AddCategory,
	"删除分类": DeleteCategory,
	"剩余预算": BudgetRemain,
	"预算剩余": BudgetRemain,
	"预算建议": SuggestBudgets,
	"智能预算": SuggestBudgets,
	"查询收入": QueryIncome,
	"收入查询": QueryIncome,
}

// Normalize maps a known alias to its canonical intent name. Canonical
// names match case-insensitively; anything else is returned trimmed but
// otherwise unchanged.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := aliases[name]; ok {
		return canonical
	}

	lower := strings.ToLower(name)
	for _, canonical := range Names {
		if lower == canonical {
			return canonical
		}
	}
	return name
}
