// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
)

// chatService is the dispatch orchestrator of one chat turn.
type chatService struct {
	assistant     Assistant
	registry      *IntentRegistry
	conversations store.ConversationStore
	llmConfigs    LLMConfigService
	validator     validators.Validator

	logger *logger.Logger
}

func NewChatService(
	assistant Assistant,
	registry *IntentRegistry,
	conversations store.ConversationStore,
	llmConfigs LLMConfigService,
	log *logger.Logger,
) ChatService {
	return &chatService{
		assistant:     assistant,
		registry:      registry,
		conversations: conversations,
		llmConfigs:    llmConfigs,
		validator:     validators.NewLedgerValidator(),
		logger:        log,
	}
}

// Chat runs one turn for userID.
//
// Only the trailing line of the message drives intent extraction. Every
// extracted intent with a registered handler runs in order; when at least
// one ran, the joined results are summarized together with the full
// message. Otherwise the turn is answered conversationally over the user's
// history.
func (s *chatService) Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	message := strings.TrimSpace(req.Message)

	llm := s.llmConfigs.Resolve(ctx, userID, req.LLM)
	s.conversations.Append(userID, models.Message{Role: models.RoleUser, Content: message})

	extracted := s.assistant.ExtractIntents(ctx, llm, trailingLine(message))
	parsed := intent.Parse(extracted)

	results := make([]models.HandlerResult, 0, len(parsed))
	for _, p := range parsed {
		result, handled := s.registry.Dispatch(ctx, userID, p, llm)
		if !handled {
			log.Debug().
				Str("func", "*chatService.Chat").
				Str("intent", p.Name).
				Msg("no handler for intent")
			continue
		}
		if result.Message != "" {
			results = append(results, result)
		}
	}

	var reply string
	if len(results) > 0 {
		texts := make([]string, len(results))
		for i, r := range results {
			texts[i] = r.Message
		}
		reply = s.assistant.Summarize(ctx, llm, message, strings.Join(texts, "\n"))
	} else {
		reply = s.assistant.Chat(ctx, llm, s.conversations.History(userID))
	}

	s.conversations.Append(userID, models.Message{Role: models.RoleAssistant, Content: reply})

	log.Info().
		Str("func", "*chatService.Chat").
		Int64("user_id", userID).
		Int("intents", len(parsed)).
		Int("handled", len(results)).
		Msg("chat turn completed")

	return models.ChatResponse{Reply: reply, Results: results}, nil
}

// trailingLine returns the last non-blank line of message.
func trailingLine(message string) string {
	lines := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return message
}
