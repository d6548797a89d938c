// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] before it is used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}
	if _, err := cfg.Server.TrustedProxyPrefixes(); err != nil {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.APIURL == "" || cfg.Adapter.Model == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !cfg.Gate.Disabled && (cfg.Gate.BlockThreshold < 1 || cfg.Gate.BanDuration <= 0) {
		return ErrInvalidGateConfigs
	}

	if cfg.Chat.HistoryLimit < 1 {
		return ErrInvalidChatConfigs
	}

	if cfg.Workers.JanitorSchedule == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
