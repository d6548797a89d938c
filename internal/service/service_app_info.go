package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ledger-chat/internal/config"
	"github.com/MKhiriev/go-ledger-chat/internal/logger"
)

// appInfoService answers /api/heartbeat.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when cfg carries no version, so a misbuilt binary
// is caught at startup rather than by a probe.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
