// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/app"
	"github.com/MKhiriev/go-ledger-chat/internal/intent"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
)

// IntentCall is everything a handler may use for one intent.
type IntentCall struct {
	UserID int64
	Args   models.IntentArgs
	// Params holds the raw parameters as extracted.
	Params map[string]string
	// LLM is the endpoint resolved for this chat turn.
	LLM models.LLMConfig
}

// IntentHandler executes one intent. It never returns an error: failures
// are results with OK unset.
type IntentHandler func(ctx context.Context, call IntentCall) models.HandlerResult

// IntentRegistry maps canonical intent names to handlers and binds raw
// parameters before invoking them.
type IntentRegistry struct {
	handlers map[string]IntentHandler
	binder   validators.IntentBinder

	logger *logger.Logger
}

func NewIntentRegistry(binder validators.IntentBinder, log *logger.Logger) *IntentRegistry {
	return &IntentRegistry{
		handlers: make(map[string]IntentHandler),
		binder:   binder,
		logger:   log.Component("intent_registry"),
	}
}

// Register adds h under name. A name can be registered once.
func (r *IntentRegistry) Register(name string, h IntentHandler) error {
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrIntentAlreadyRegistered, name)
	}
	r.handlers[name] = h
	return nil
}

// Has reports whether a handler is registered for name.
func (r *IntentRegistry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Dispatch binds the parameters of parsed and runs its handler. The second
// result is false when no handler is registered for the intent.
func (r *IntentRegistry) Dispatch(ctx context.Context, userID int64, parsed models.ParsedIntent, llm models.LLMConfig) (models.HandlerResult, bool) {
	h, ok := r.handlers[parsed.Name]
	if !ok {
		return models.HandlerResult{}, false
	}

	args, err := r.binder.Bind(ctx, parsed.Name, parsed.Params)
	if err != nil {
		r.logger.Debug().Err(err).
			Str("func", "*IntentRegistry.Dispatch").
			Str("intent", parsed.Name).
			Int64("user_id", userID).
			Msg("intent arguments rejected")
		return failed(parsed.Name, argumentErrorReply(parsed.Name, err)), true
	}

	result := r.invoke(ctx, h, parsed.Name, IntentCall{UserID: userID, Args: args, Params: parsed.Params, LLM: llm})
	result.Intent = parsed.Name
	return result, true
}

func (r *IntentRegistry) invoke(ctx context.Context, h IntentHandler, name string, call IntentCall) (result models.HandlerResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().
				Str("func", "*IntentRegistry.invoke").
				Str("intent", name).
				Int64("user_id", call.UserID).
				Any("panic", rec).
				Msg("intent handler panicked")
			result = failed(name, app.ReplyHandlerFailed)
		}
	}()

	return h(ctx, call)
}

var missingArgsReplies = map[string]string{
	intent.AddRecord:      app.ReplyEntryMissingArgs,
	intent.AddIncome:      app.ReplyEntryMissingArgs,
	intent.SetBudget:      app.ReplyBudgetSetMissingArgs,
	intent.UpdateBudget:   app.ReplyBudgetUpdateMissingArgs,
	intent.AddCategory:    app.ReplyCategoryEmpty,
	intent.DeleteCategory: app.ReplyCategoryEmpty,
}

var argumentErrorDetails = map[error]string{
	validators.ErrInvalidAmount:    "金额必须是大于 0 的数字",
	validators.ErrInvalidDate:      "日期格式应为 YYYY-MM-DD",
	validators.ErrInvalidMonth:     "月份格式应为 YYYY-MM",
	validators.ErrInvalidTimeRange: "时间范围应为 YYYY-MM 或 YYYY",
}

func argumentErrorReply(name string, err error) string {
	if errors.Is(err, validators.ErrMissingParameter) {
		if reply, ok := missingArgsReplies[name]; ok {
			return reply
		}
	}
	if errors.Is(err, validators.ErrInvalidCategoryType) {
		return app.ReplyCategoryBadType
	}
	for target, detail := range argumentErrorDetails {
		if errors.Is(err, target) {
			return fmt.Sprintf(app.ReplyInvalidArgs, detail)
		}
	}
	return fmt.Sprintf(app.ReplyInvalidArgs, err.Error())
}

func succeeded(name, message string) models.HandlerResult {
	return models.HandlerResult{Intent: name, OK: true, Message: message}
}

func failed(name, message string) models.HandlerResult {
	return models.HandlerResult{Intent: name, OK: false, Message: message}
}
