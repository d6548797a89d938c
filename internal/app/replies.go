// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Intent handler replies. Placeholders are filled with fmt.Sprintf; amounts
// are passed as already formatted decimal strings.
const (
	ReplyRecordAdded      = "✅ 成功记录一笔消费：你在「%s」方面支出了 ¥%s，备注为「%s」，日期为 %s。"
	ReplyIncomeAdded      = "✅ 成功记录一笔收入：「%s」进账 ¥%s，备注为「%s」，日期为 %s。"
	ReplyEntryMissingArgs = "⚠️ 分类和金额不能为空"

	ReplyBudgetSet               = "✅ 已为「%s」设置 %s 预算 ¥%s。理性消费，快乐生活！"
	ReplyBudgetSetMissingArgs    = "⚠️ 设置预算失败，缺少分类或金额"
	ReplyBudgetUpdated           = "✅ 已更新「%s」的预算为 ¥%s/%s。别忘了定期检查哦！"
	ReplyBudgetUpdateMissingArgs = "⚠️ 更新预算失败，缺少分类或金额"

	// ReplyCategoryTypeConflict takes the category, its stored type label
	// and the type label the operation needs.
	ReplyCategoryTypeConflict = "⚠️ 「%s」已是%s分类，不能作为%s分类使用。"

	ReplyNoSpending       = "📊 当前还没有支出记录呢，快去记录第一笔消费吧！"
	ReplySpendHeader      = "📊 %s 消费分析如下：\n"
	ReplySpendAllTime     = "\n📈 历史累计支出：\n"
	ReplyIncomeMonth      = "\n💰 %s 收入来源：\n"
	ReplyIncomeAllTime    = "\n💰 历史累计收入：\n"
	ReplySpendRow         = "👉 分类「%s」共 ¥%s\n"
	ReplySpendFooter      = "\n💡 建议：检查是否有过度消费的项目，合理调整预算哦~"
	ReplyCategoryAdded    = "✅ 分类「%s」添加成功，快来使用吧！"
	ReplyCategoryEmpty    = "⚠️ 分类名不能为空"
	ReplyCategoryExists   = "⚠️ 分类「%s」已存在（%s分类）。"
	ReplyCategoryBadType  = "⚠️ 分类类型只能是「支出」或「收入」"
	ReplyCategoryDeleted  = "✅ 已彻底删除分类「%s」及其相关预算与记录，清理完毕！"
	ReplyCategoryNotFound = "⚠️ 分类「%s」不存在，无需删除。"

	ReplyNoBudgets      = "ℹ️ %s 还没有设置任何预算。"
	ReplyNoBudgetFor    = "ℹ️ 「%s」在 %s 没有设置预算。"
	ReplyBudgetRemainHd = "📋 %s 预算剩余情况：\n"
	ReplyBudgetRemainRw = "👉「%s」预算 ¥%s，已花 ¥%s，剩余 ¥%s\n"

	ReplySuggestNoData     = "📊 本月还没有支出记录，暂时无法给出预算建议。"
	ReplySuggestParseError = "⚠️ 无法解析预算建议，请稍后再试。"
	ReplySuggestHeader     = "✅ 已根据本月消费生成预算：\n"
	ReplySuggestRow        = "👉「%s」¥%s\n"
	ReplySuggestSkipped    = "⏭️ 跳过「%s」：不是支出分类\n"

	ReplyIncomeNone      = "💰 还没有收入记录。"
	ReplyIncomeRecentHd  = "💰 最近 %d 笔收入：\n"
	ReplyIncomeRecentRow = "👉 %s「%s」¥%s %s\n"
	ReplyIncomeRecentSum = "合计 ¥%s"
	ReplyIncomeSum       = "💰 %s收入合计 ¥%s"

	ReplyInvalidArgs   = "⚠️ 参数有误：%s"
	ReplyHandlerFailed = "❌ 操作失败，请稍后重试。"
)

// Assistant fallbacks used when the completion endpoint fails.
const (
	FallbackIntent  = "意图：unknown\n参数："
	FallbackSummary = "❌ 分析失败：LLM 响应格式异常"
	FallbackChat    = "❌ 抱歉，助手暂时无法回复，请稍后再试。"
)
