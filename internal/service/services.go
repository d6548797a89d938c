package service

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/crypto"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/validators"
)

type Services struct {
	AuthService      AuthService
	ChatService      ChatService
	LedgerService    LedgerService
	LLMConfigService LLMConfigService
	AppInfoService   AppInfoService
}

// NewServices wires every service over storages. client is the completion
// client used by the chat pipeline.
func NewServices(storages *store.Storages, client adapter.CompletionClient, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	keys, err := crypto.NewKeyChain(cfg.App.SealingSecret())
	if err != nil {
		return nil, fmt.Errorf("error creating key chain: %w", err)
	}

	llmConfigService := NewLLMConfigService(storages.LLMConfigRepository, keys, logger)
	assistant := NewAssistant(client, cfg.Adapter, logger)

	registry := NewIntentRegistry(validators.NewIntentBinder(), logger)
	if err = newLedgerIntents(storages, assistant, logger).register(registry); err != nil {
		return nil, fmt.Errorf("error registering intent handlers: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		ChatService:      NewChatService(assistant, registry, storages.ConversationStore, llmConfigService, logger),
		LedgerService:    NewLedgerValidationService().Wrap(NewLedgerService(storages, logger)),
		LLMConfigService: llmConfigService,
		AppInfoService:   appInfoService,
	}, nil
}
