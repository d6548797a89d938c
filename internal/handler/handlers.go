package handler

import (
	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/handler/grpc"
	"github.com/MKhiriev/go-ledger-chat/internal/handler/http"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transports enabled in cfg. requestGate may be nil.
// pinger backs the gRPC health status.
func NewHandlers(services *service.Services, requestGate *gate.Gate, pinger grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, requestGate, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
