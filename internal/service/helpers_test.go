// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/mock"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestStorages returns repositories over a migrated in-memory SQLite
// database and the id of a user created in it.
func newTestStorages(t *testing.T) (*store.Storages, int64) {
	t.Helper()

	cfg := &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}},
		Chat:    config.Chat{HistoryLimit: 10},
	}

	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	user, err := storages.UserRepository.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)

	return storages, user.UserID
}

// completions holds the canned reply of each assistant mode. intents is
// keyed by the line sent for extraction. An empty reply makes the call fail.
type completions struct {
	intents map[string]string
	summary string
	chat    string
	advice  string
}

// expectCompletions answers every Complete call on client according to the
// prompt it carries, and records the requests.
func expectCompletions(client *mock.MockCompletionClient, c completions) *[]models.CompletionRequest {
	var seen []models.CompletionRequest

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.CompletionRequest) (string, error) {
			seen = append(seen, req)

			var reply string
			switch first := req.Messages[0].Content; {
			case strings.HasPrefix(first, "你是一个智能财务助理"):
				reply = c.intents[req.Messages[1].Content]
			case first == summarySystemPrompt:
				reply = c.summary
			case first == chatSystemPrompt:
				reply = c.chat
			default:
				reply = c.advice
			}

			if reply == "" {
				return "", adapter.ErrEmptyCompletion
			}
			return reply, nil
		}).AnyTimes()

	return &seen
}

// chatFixture wires the chat pipeline over a fresh database and a scripted
// completion client.
type chatFixture struct {
	storages *store.Storages
	userID   int64
	chat     ChatService
	requests *[]models.CompletionRequest
}

func newChatFixture(t *testing.T, c completions) *chatFixture {
	t.Helper()

	storages, userID := newTestStorages(t)

	ctrl := gomock.NewController(t)
	client := mock.NewMockCompletionClient(ctrl)
	requests := expectCompletions(client, c)

	cfg := &config.StructuredConfig{
		App:     config.App{Version: "test", TokenSignKey: "sign-key"},
		Adapter: config.Adapter{Temperature: 0.7, RequestTimeout: 5 * time.Second},
	}

	services, err := NewServices(storages, client, cfg, logger.Nop())
	require.NoError(t, err)

	return &chatFixture{
		storages: storages,
		userID:   userID,
		chat:     services.ChatService,
		requests: requests,
	}
}

func (f *chatFixture) send(t *testing.T, message string) models.ChatResponse {
	t.Helper()

	resp, err := f.chat.Chat(context.Background(), f.userID, models.ChatRequest{Message: message})
	require.NoError(t, err)
	return resp
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}
