// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository      UserRepository
	CategoryRepository  CategoryRepository
	EntryRepository     EntryRepository
	BudgetRepository    BudgetRepository
	LLMConfigRepository LLMConfigRepository
	ConversationStore   ConversationStore

	db *DB
}

// NewStorages connects to the configured database, migrates it and builds
// the repositories on top of it.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return newStoragesFromDB(db, cfg.Chat.HistoryLimit, log), nil
}

func newStoragesFromDB(db *DB, historyLimit int, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		CategoryRepository:  NewCategoryRepository(db, log),
		EntryRepository:     NewEntryRepository(db, log),
		BudgetRepository:    NewBudgetRepository(db, log),
		LLMConfigRepository: NewLLMConfigRepository(db, log),
		ConversationStore:   NewConversationStore(historyLimit),
		db:                  db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
