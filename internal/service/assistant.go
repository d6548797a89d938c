// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
)

const intentPrompt = `你是一个智能财务助理。请根据用户输入生成结构化的意图（intent）和参数（params）。
意图必须为：%s。
各意图可用的参数：
- add_record / add_income：分类、金额、备注、时间
- set_budget / update_budget：分类、金额、周期
- analyze_spend：月份
- add_category：分类、类型（支出或收入）
- delete_category：分类
- budget_remain：分类、月份
- suggest_budgets：总预算
- query_income：分类、时间范围（YYYY-MM 或 YYYY）、全部（是/否）
如果一句话包含多个操作，每个意图单独输出一段，段与段之间空一行。
今天是 %s。
请严格使用以下格式输出：
意图：add_record
参数：
分类：餐饮
金额：25
备注：麦当劳
时间：2025-06-08`

const summarySystemPrompt = "你是一个善于总结和分析的财务顾问。"

const summaryPrompt = `你是一个财务顾问，请根据用户的操作结果进行总结和建议。
用户输入：%s
系统执行结果：%s
请用自然语言总结这次操作，并提出简短合理的建议（50字以内）,不要添加不必要的格式化符号
回复尽量人性化且风趣
不要做()括起来的额外回复
如果用户此次操作为本月消费分析请求，请给出消费行为详细分析及评分。`

const chatSystemPrompt = `你是一个友好的个人记账助理。用户这次没有提出记账、预算或查询类的操作，请自然地和用户聊天，
回复简洁，必要时提醒用户可以直接说“午饭花了25元”“给餐饮设置600预算”“分析本月消费”等。`

const advicePrompt = `你是一个理性的理财顾问。以下是用户本月各分类的支出：
%s
%s请为每个分类给出合理的月度预算，严格使用以下格式输出，每个分类两行，不要输出其他内容：
分类：餐饮
预算：600`

type assistant struct {
	client      adapter.CompletionClient
	temperature float32
	timeout     time.Duration
	now         func() time.Time

	logger *logger.Logger
}

// NewAssistant builds the Assistant over client. Every call is bounded by
// cfg.RequestTimeout.
func NewAssistant(client adapter.CompletionClient, cfg config.Adapter, log *logger.Logger) Assistant {
	return &assistant{
		client:      client,
		temperature: cfg.Temperature,
		timeout:     cfg.RequestTimeout,
		now:         time.Now,
		logger:      log.Component("assistant"),
	}
}

// ExtractIntents asks for the structured intent blocks of message.
func (a *assistant) ExtractIntents(ctx context.Context, llm models.LLMConfig, message string) string {
	system := fmt.Sprintf(intentPrompt, strings.Join(intent.Names, ", "), a.now().Format("2006-01-02"))

	return a.complete(ctx, "intent", llm, app.FallbackIntent,
		models.Message{Role: models.RoleSystem, Content: system},
		models.Message{Role: models.RoleUser, Content: message},
	)
}

// Summarize turns the joined handler results into the final reply.
func (a *assistant) Summarize(ctx context.Context, llm models.LLMConfig, message, results string) string {
	return a.complete(ctx, "summary", llm, app.FallbackSummary,
		models.Message{Role: models.RoleSystem, Content: summarySystemPrompt},
		models.Message{Role: models.RoleUser, Content: fmt.Sprintf(summaryPrompt, message, results)},
	)
}

// Chat answers a conversational turn over history.
func (a *assistant) Chat(ctx context.Context, llm models.LLMConfig, history []models.Message) string {
	messages := make([]models.Message, 0, len(history)+1)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: chatSystemPrompt})
	messages = append(messages, history...)

	return a.complete(ctx, "chat", llm, app.FallbackChat, messages...)
}

// AdviseBudgets asks for one 分类/预算 line pair per spending category. An
// unreachable endpoint yields the intent fallback, which the advice parser
// rejects.
func (a *assistant) AdviseBudgets(ctx context.Context, llm models.LLMConfig, spending []models.CategoryTotal, total decimal.NullDecimal) string {
	var lines strings.Builder
	for _, s := range spending {
		fmt.Fprintf(&lines, "分类：%s，本月支出：¥%s\n", s.Category, s.Total.StringFixed(2))
	}

	constraint := ""
	if total.Valid {
		constraint = fmt.Sprintf("所有分类的预算加起来必须正好等于总预算 ¥%s。\n", total.Decimal.String())
	}

	return a.complete(ctx, "advice", llm, app.FallbackIntent,
		models.Message{Role: models.RoleUser, Content: fmt.Sprintf(advicePrompt, strings.TrimRight(lines.String(), "\n"), constraint)},
	)
}

func (a *assistant) complete(ctx context.Context, mode string, llm models.LLMConfig, fallback string, messages ...models.Message) string {
	reply, err := a.client.Complete(ctx, models.CompletionRequest{
		Endpoint:    llm,
		Messages:    messages,
		Temperature: a.temperature,
		Timeout:     a.timeout,
	})
	if err != nil {
		a.logger.Err(err).
			Str("func", "*assistant.complete").
			Str("mode", mode).
			Msg("completion failed, using fallback")
		return fallback
	}

	return reply
}
