// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-ledger-chat/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldCategoryName = "category_name"
	FieldCategoryType = "category_type"
	FieldAmount       = "amount"
	FieldMonth        = "month"
	FieldAPIURL       = "api_url"
	FieldMessage      = "message"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 6
	maxCategoryLength = 32
)

// LedgerValidator implements Validator for the request bodies of the HTTP
// API: users, categories, budgets, LLM settings and chat requests.
type LedgerValidator struct {
}

// NewLedgerValidator constructs a LedgerValidator and returns it as the
// Validator interface.
func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for any other type.
func (v *LedgerValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Category:
		return v.validateCategory(value, fields...)
	case *models.Category:
		return v.validateCategory(*value, fields...)

	case models.Budget:
		return v.validateBudget(value, fields...)
	case *models.Budget:
		return v.validateBudget(*value, fields...)

	case models.LLMConfig:
		return v.validateLLMConfig(value, fields...)
	case *models.LLMConfig:
		return v.validateLLMConfig(*value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks credentials. Defaults to username and password.
func (v *LedgerValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			n := utf8.RuneCountInString(user.Username)
			if n < minUsernameLength || n > maxUsernameLength || strings.TrimSpace(user.Username) != user.Username {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateCategory(category models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName, FieldCategoryType}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryName:
			if !validCategoryName(category.Name) {
				return ErrInvalidCategoryName
			}
		case FieldCategoryType:
			if _, ok := models.ParseCategoryType(string(category.Type)); !ok {
				return ErrInvalidCategoryType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBudget defaults to name, amount and month. An empty month is
// accepted and means the current month.
func (v *LedgerValidator) validateBudget(budget models.Budget, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryName, FieldAmount, FieldMonth}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryName:
			if !validCategoryName(budget.Category) {
				return ErrInvalidCategoryName
			}
		case FieldAmount:
			if !budget.Amount.IsPositive() {
				return ErrInvalidAmount
			}
		case FieldMonth:
			if budget.Month == "" {
				continue
			}
			if _, err := time.Parse(monthLayout, budget.Month); err != nil {
				return ErrInvalidMonth
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLLMConfig accepts an empty URL (meaning "use the default") or an
// absolute http(s) URL.
func (v *LedgerValidator) validateLLMConfig(cfg models.LLMConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAPIURL}
	}

	for _, f := range fields {
		switch f {
		case FieldAPIURL:
			if cfg.APIURL == "" {
				continue
			}
			u, err := url.Parse(cfg.APIURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return ErrInvalidURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *LedgerValidator) validateChatRequest(req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage, FieldAPIURL}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
		case FieldAPIURL:
			if req.LLM == nil {
				continue
			}
			if err := v.validateLLMConfig(*req.LLM, FieldAPIURL); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validCategoryName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && trimmed == name && utf8.RuneCountInString(name) <= maxCategoryLength
}
