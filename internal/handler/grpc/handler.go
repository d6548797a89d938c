// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service. The serving
// status follows the database: it is refreshed from a ping by the janitor.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ""
// status.
const ServiceName = "ledgerchat.v1.LedgerChat"

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler starts in SERVING state; the first Refresh corrects it.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Refresh pings the database and publishes the result.
func (h *Handler) Refresh(ctx context.Context) {
	if h.pinger == nil {
		return
	}

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Refresh").Msg("health probe failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown switches every service to NOT_SERVING so watchers drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
