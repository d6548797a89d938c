// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration of the ledger chat server.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the bootstrap admin and the version.
	App App `envPrefix:"APP_"`

	// Storage selects the relational backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and CORS origins.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the default completion endpoint used by the assistant.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Gate configures the request-gating middleware.
	Gate Gate `envPrefix:"GATE_"`

	// Chat configures per-user conversation history.
	Chat Chat `envPrefix:"CHAT_"`

	// Workers configures background maintenance.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by /api/heartbeat.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AdminUsername and AdminPassword describe the account created on first
	// start when no user with that name exists. Empty disables bootstrap.
	// Env: APP_ADMIN_USERNAME, APP_ADMIN_PASSWORD
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// EncryptionKey seals the API keys users store for their own
	// completion endpoints. Falls back to TokenSignKey when empty.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`
}

// SealingSecret returns the secret stored API keys are sealed with.
func (a App) SealingSecret() string {
	if a.EncryptionKey != "" {
		return a.EncryptionKey
	}
	return a.TokenSignKey
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB holds connection settings for the relational database.
type DB struct {
	// Driver is either "pgx" (PostgreSQL) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a postgres:// URI for pgx or a file
	// path for sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the inbound transports.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress enables the gRPC health service when set.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// TrustedProxies lists the peers, as CIDRs or single addresses, whose
	// X-Real-IP header names the client. Requests from any other peer are
	// identified by their remote address.
	// Env: SERVER_TRUSTED_PROXIES
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address is treated as
// a single-host prefix.
func (s Server) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, raw := range s.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return prefixes, nil
}

// Adapter describes the default OpenAI-compatible completion endpoint.
type Adapter struct {
	// Env: ADAPTER_LLM_API_URL
	APIURL string `env:"LLM_API_URL"`

	// Env: ADAPTER_LLM_API_KEY
	APIKey string `env:"LLM_API_KEY"`

	// Env: ADAPTER_LLM_MODEL
	Model string `env:"LLM_MODEL"`

	// Temperature used for intent extraction and chat.
	// Env: ADAPTER_LLM_TEMPERATURE
	Temperature float32 `env:"LLM_TEMPERATURE"`

	// RequestTimeout bounds every completion call.
	// Env: ADAPTER_LLM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"LLM_REQUEST_TIMEOUT"`
}

// Gate configures the LLM-driven request gate.
type Gate struct {
	// Disabled turns the middleware off entirely.
	// Env: GATE_DISABLED
	Disabled bool `env:"DISABLED"`

	// APIURL, APIKey and Model override the default endpoint for
	// classification. Empty fields fall back to Adapter.
	// Env: GATE_API_URL, GATE_API_KEY, GATE_MODEL
	APIURL string `env:"API_URL"`
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL"`

	// Whitelist holds path prefixes that skip classification.
	// Env: GATE_WHITELIST (comma separated)
	Whitelist []string `env:"WHITELIST" envSeparator:","`

	// BlockThreshold is the number of consecutive blocks that ban an IP.
	// Env: GATE_BLOCK_THRESHOLD
	BlockThreshold int `env:"BLOCK_THRESHOLD"`

	// BanDuration is how long a ban lasts.
	// Env: GATE_BAN_DURATION
	BanDuration time.Duration `env:"BAN_DURATION"`

	// FailClosed turns classifier failures into blocks. Off by default, so
	// failures are logged and the request passes.
	// Env: GATE_FAIL_CLOSED
	FailClosed bool `env:"FAIL_CLOSED"`

	// ResetOnBanExpiry clears the block counter when a ban expires. When
	// false the counter carries over and one further block re-bans.
	// Env: GATE_RESET_ON_BAN_EXPIRY
	ResetOnBanExpiry bool `env:"RESET_ON_BAN_EXPIRY"`

	// DecisionCacheTTL caches log/warn verdicts per request shape.
	// Zero disables the cache.
	// Env: GATE_DECISION_CACHE_TTL
	DecisionCacheTTL time.Duration `env:"DECISION_CACHE_TTL"`
}

// Chat configures conversation history.
type Chat struct {
	// HistoryLimit is the number of turns kept per user.
	// Env: CHAT_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// HistoryIdleTTL evicts a user's history after this much inactivity.
	// Env: CHAT_HISTORY_IDLE_TTL
	HistoryIdleTTL time.Duration `env:"HISTORY_IDLE_TTL"`
}

// Workers configures background maintenance.
type Workers struct {
	// JanitorSchedule is a robfig/cron spec, e.g. "@every 5m".
	// Env: WORKERS_JANITOR_SCHEDULE
	JanitorSchedule string `env:"JANITOR_SCHEDULE"`
}

// GateEndpoint returns the gate endpoint with empty fields filled from the
// default adapter endpoint.
func (cfg *StructuredConfig) GateEndpoint() (url, key, model string) {
	url, key, model = cfg.Gate.APIURL, cfg.Gate.APIKey, cfg.Gate.Model
	if url == "" {
		url = cfg.Adapter.APIURL
	}
	if key == "" {
		key = cfg.Adapter.APIKey
	}
	if model == "" {
		model = cfg.Adapter.Model
	}
	return url, key, model
}

// GetStructuredConfig loads, merges and validates the configuration. Later
// sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is [GetStructuredConfig] over explicit command-line
// arguments.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
