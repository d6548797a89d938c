// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/mock"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssistant(t *testing.T) (*assistant, *mock.MockCompletionClient) {
	t.Helper()

	client := mock.NewMockCompletionClient(gomock.NewController(t))
	a := NewAssistant(client, config.Adapter{Temperature: 0.7, RequestTimeout: 3 * time.Second}, logger.Nop()).(*assistant)
	a.now = func() time.Time { return time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC) }

	return a, client
}

func TestAssistant_ExtractIntents_Request(t *testing.T) {
	a, client := newTestAssistant(t)
	llm := models.LLMConfig{APIURL: "https://llm.example", Model: "m"}

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.CompletionRequest) (string, error) {
			assert.Equal(t, llm, req.Endpoint)
			assert.Equal(t, float32(0.7), req.Temperature)
			assert.Equal(t, 3*time.Second, req.Timeout)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, models.RoleSystem, req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "今天是 2025-06-08")
			assert.Contains(t, req.Messages[0].Content, "suggest_budgets")
			assert.Equal(t, models.Message{Role: models.RoleUser, Content: "午饭25"}, req.Messages[1])
			return "意图：add_record", nil
		})

	assert.Equal(t, "意图：add_record", a.ExtractIntents(context.Background(), llm, "午饭25"))
}

func TestAssistant_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		call func(a *assistant) string
		want string
	}{
		{
			name: "intent",
			call: func(a *assistant) string {
				return a.ExtractIntents(context.Background(), models.LLMConfig{}, "hi")
			},
			want: app.FallbackIntent,
		},
		{
			name: "summary",
			call: func(a *assistant) string {
				return a.Summarize(context.Background(), models.LLMConfig{}, "hi", "done")
			},
			want: app.FallbackSummary,
		},
		{
			name: "chat",
			call: func(a *assistant) string {
				return a.Chat(context.Background(), models.LLMConfig{}, nil)
			},
			want: app.FallbackChat,
		},
		{
			name: "advice",
			call: func(a *assistant) string {
				return a.AdviseBudgets(context.Background(), models.LLMConfig{}, nil, decimal.NullDecimal{})
			},
			want: app.FallbackIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, client := newTestAssistant(t)
			client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", adapter.ErrTimeout)

			assert.Equal(t, tt.want, tt.call(a))
		})
	}
}

func TestAssistant_ChatPrependsSystemPrompt(t *testing.T) {
	a, client := newTestAssistant(t)
	history := []models.Message{
		{Role: models.RoleUser, Content: "你好"},
		{Role: models.RoleAssistant, Content: "你好呀"},
		{Role: models.RoleUser, Content: "在吗"},
	}

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.CompletionRequest) (string, error) {
			require.Len(t, req.Messages, 4)
			assert.Equal(t, models.Message{Role: models.RoleSystem, Content: chatSystemPrompt}, req.Messages[0])
			assert.Equal(t, history, req.Messages[1:])
			return "在的", nil
		})

	assert.Equal(t, "在的", a.Chat(context.Background(), models.LLMConfig{}, history))
}

func TestAssistant_AdviseBudgetsPrompt(t *testing.T) {
	a, client := newTestAssistant(t)
	spending := []models.CategoryTotal{
		{Category: "餐饮", Total: dec("320.5")},
		{Category: "交通", Total: dec("80")},
	}

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.CompletionRequest) (string, error) {
			require.Len(t, req.Messages, 1)
			content := req.Messages[0].Content
			assert.Contains(t, content, "分类：餐饮，本月支出：¥320.50")
			assert.Contains(t, content, "分类：交通，本月支出：¥80.00")
			assert.Contains(t, content, "总预算 ¥1000")
			return "分类：餐饮\n预算：700", nil
		})

	got := a.AdviseBudgets(context.Background(), models.LLMConfig{}, spending, decimal.NewNullDecimal(dec("1000")))
	assert.Equal(t, "分类：餐饮\n预算：700", got)
}
