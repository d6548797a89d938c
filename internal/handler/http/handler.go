package http

import (
	"net/netip"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/gate"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
	"github.com/MKhiriev/go-ledger-chat/internal/service"
)

type Handler struct {
	services *service.Services

	// gate screens every request before routing. Nil disables it.
	gate *gate.Gate

	allowedOrigins []string
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestGate *gate.Gate, cfg config.Server, logger *logger.Logger) *Handler {
	trustedProxies, err := cfg.TrustedProxyPrefixes()
	if err != nil {
		logger.Err(err).Msg("ignoring trusted proxies, X-Real-IP will not be read")
		trustedProxies = nil
	}

	logger.Info().
		Bool("gate", requestGate != nil).
		Int("trusted_proxies", len(trustedProxies)).
		Msg("http handler created")
	return &Handler{
		services:       services,
		gate:           requestGate,
		allowedOrigins: cfg.AllowedOrigins,
		trustedProxies: trustedProxies,
		logger:         logger,
	}
}
