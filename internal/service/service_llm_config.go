// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/crypto"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
	"github.com/MKhiriev/go-ledger-chat/models"
)

type llmConfigService struct {
	repository store.LLMConfigRepository
	keys       crypto.KeyChain
	validator  validators.Validator

	logger *logger.Logger
}

// NewLLMConfigService stores API keys sealed with keys.
func NewLLMConfigService(repository store.LLMConfigRepository, keys crypto.KeyChain, log *logger.Logger) LLMConfigService {
	return &llmConfigService{
		repository: repository,
		keys:       keys,
		validator:  validators.NewLedgerValidator(),
		logger:     log,
	}
}

// Get returns the stored endpoint of userID with the key masked. A user
// without a stored endpoint gets the zero config.
func (s *llmConfigService) Get(ctx context.Context, userID int64) (models.LLMConfig, error) {
	cfg, err := s.load(ctx, userID)
	if errors.Is(err, store.ErrLLMConfigNotFound) {
		return models.LLMConfig{}, nil
	}
	if err != nil {
		return models.LLMConfig{}, err
	}
	return cfg.Masked(), nil
}

// Save stores cfg for userID. An empty API key keeps the stored one, so a
// client can resend the masked config it was given.
func (s *llmConfigService) Save(ctx context.Context, userID int64, cfg models.LLMConfig) error {
	if err := s.validator.Validate(ctx, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if cfg.APIKey == "" || isMasked(cfg.APIKey) {
		stored, err := s.load(ctx, userID)
		if err != nil && !errors.Is(err, store.ErrLLMConfigNotFound) {
			return err
		}
		cfg.APIKey = stored.APIKey
	}

	sealed, err := s.keys.Seal(cfg.APIKey)
	if err != nil {
		return fmt.Errorf("error sealing api key: %w", err)
	}
	cfg.APIKey = sealed

	if err = s.repository.SaveLLMConfig(ctx, userID, cfg); err != nil {
		return fmt.Errorf("error saving llm config: %w", err)
	}
	return nil
}

// Resolve implements the per-call resolution order: request override, then
// the stored user config. Remaining gaps are filled by the client default.
func (s *llmConfigService) Resolve(ctx context.Context, userID int64, override *models.LLMConfig) models.LLMConfig {
	var resolved models.LLMConfig
	if override != nil {
		resolved = *override
	}

	stored, err := s.load(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrLLMConfigNotFound) {
			logger.FromContext(ctx).Err(err).
				Str("func", "*llmConfigService.Resolve").
				Int64("user_id", userID).
				Msg("stored llm config unavailable, using defaults")
		}
		return resolved
	}

	return resolved.WithFallback(stored)
}

// load reads the stored config of userID with the API key opened.
func (s *llmConfigService) load(ctx context.Context, userID int64) (models.LLMConfig, error) {
	cfg, err := s.repository.GetLLMConfig(ctx, userID)
	if errors.Is(err, store.ErrLLMConfigNotFound) {
		return models.LLMConfig{}, err
	}
	if err != nil {
		return models.LLMConfig{}, fmt.Errorf("error reading llm config: %w", err)
	}

	if cfg.APIKey, err = s.keys.Open(cfg.APIKey); err != nil {
		return models.LLMConfig{}, fmt.Errorf("error opening api key: %w", err)
	}
	return cfg, nil
}

// isMasked reports whether key looks like the output of LLMConfig.Masked.
func isMasked(key string) bool {
	for i, r := range key {
		if r != '*' {
			return i > 0
		}
	}
	return true
}
