package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-chat/internal/adapter"
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/handler"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/server"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
	"github.com/MKhiriev/go-ledger-chat/internal/store"
	"github.com/MKhiriev/go-ledger-chat/internal/workers"
	"github.com/MKhiriev/go-ledger-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-ledger-chat")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("version", cfg.App.Version).Str("db_driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	client := adapter.NewCompletionClient(cfg.Adapter, log)

	services, err := service.NewServices(storages, client, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminUsername != "" && cfg.App.AdminPassword != "" {
		admin, created, err := services.AuthService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating admin account")
		}
		log.Info().Str("username", admin.Username).Bool("created", created).Msg("admin account is ready")
	}

	var requestGate *gate.Gate
	if cfg.Gate.Disabled {
		log.Warn().Msg("request gate is disabled")
	} else {
		url, key, model := cfg.GateEndpoint()
		classifier := gate.NewLLMClassifier(client, models.LLMConfig{APIURL: url, APIKey: key, Model: model}, cfg.Adapter.RequestTimeout)
		requestGate = gate.New(classifier, cfg.Gate, log)
	}

	handlers, err := handler.NewHandlers(services, requestGate, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	deps := workers.Dependencies{Conversations: storages.ConversationStore}
	if requestGate != nil {
		deps.Gate = requestGate
	}
	if handlers.GRPC != nil {
		deps.Health = handlers.GRPC
	}

	w, err := workers.NewWorkers(deps, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	w.Run()
	srv.RunServer()
	w.Stop()

	log.Info().Msg("server stopped")
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
