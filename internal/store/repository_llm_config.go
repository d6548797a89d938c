// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/models"
)

type llmConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLLMConfigRepository(db *DB, logger *logger.Logger) LLMConfigRepository {
	logger.Debug().Msg("creating llm config repository")
	return &llmConfigRepository{
		db:     db,
		logger: logger,
	}
}

func (r *llmConfigRepository) GetLLMConfig(ctx context.Context, userID int64) (models.LLMConfig, error) {
	query, args, err := r.db.builder.Select("api_url", "api_key", "model").
		From("llm_config").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.LLMConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cfg models.LLMConfig
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cfg.APIURL, &cfg.APIKey, &cfg.Model)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LLMConfig{}, ErrLLMConfigNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*llmConfigRepository.GetLLMConfig").
			Int64("user_id", userID).
			Msg("failed to read llm config")
		return models.LLMConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cfg, nil
}

func (r *llmConfigRepository) SaveLLMConfig(ctx context.Context, userID int64, cfg models.LLMConfig) error {
	query, args, err := r.db.builder.Insert("llm_config").
		Columns("user_id", "api_url", "api_key", "model").
		Values(userID, cfg.APIURL, cfg.APIKey, cfg.Model).
		Suffix(upsertLLMConfigSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*llmConfigRepository.SaveLLMConfig").
			Int64("user_id", userID).
			Msg("failed to save llm config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
