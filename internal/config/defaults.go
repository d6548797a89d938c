// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultLLMAPIURL = "https://api.siliconflow.cn/v1/chat/completions"
	defaultLLMModel  = "Pro/deepseek-ai/DeepSeek-V3"
)

// DefaultTrustedProxies accepts X-Real-IP only from a reverse proxy on the
// same host.
var DefaultTrustedProxies = []string{"127.0.0.0/8", "::1/128"}

// DefaultGateWhitelist are the path prefixes served without classification:
// the SPA routes and the authenticated read/CRUD API.
var DefaultGateWhitelist = []string{
	"/login", "/chat", "/ledger", "/admin",
	"/api/me", "/api/login", "/api/logout",
	"/api/categories", "/api/income", "/api/records",
	"/api/stats", "/api/budgets", "/api/llm_config", "/api/heartbeat",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-ledger-chat",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "ledger.db",
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 60 * time.Second,
			TrustedProxies: append([]string(nil), DefaultTrustedProxies...),
		},
		Adapter: Adapter{
			APIURL:         defaultLLMAPIURL,
			Model:          defaultLLMModel,
			Temperature:    0.7,
			RequestTimeout: 10 * time.Second,
		},
		Gate: Gate{
			Whitelist:        append([]string(nil), DefaultGateWhitelist...),
			BlockThreshold:   3,
			BanDuration:      time.Hour,
			DecisionCacheTTL: time.Minute,
		},
		Chat: Chat{
			HistoryLimit:   10,
			HistoryIdleTTL: 30 * time.Minute,
		},
		Workers: Workers{
			JanitorSchedule: "@every 5m",
		},
	}
}
