// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		AdminUsername string   `json:"admin_username"`
		AdminPassword string   `json:"admin_password"`
		EncryptionKey string   `json:"encryption_key"`
	} `json:"app"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server"`

	Adapter struct {
		APIURL         string   `json:"llm_api_url"`
		APIKey         string   `json:"llm_api_key"`
		Model          string   `json:"llm_model"`
		Temperature    float32  `json:"llm_temperature"`
		RequestTimeout Duration `json:"llm_request_timeout"`
	} `json:"adapter"`

	Gate struct {
		Disabled         bool     `json:"disabled"`
		APIURL           string   `json:"api_url"`
		APIKey           string   `json:"api_key"`
		Model            string   `json:"model"`
		Whitelist        []string `json:"whitelist"`
		BlockThreshold   int      `json:"block_threshold"`
		BanDuration      Duration `json:"ban_duration"`
		FailClosed       bool     `json:"fail_closed"`
		ResetOnBanExpiry bool     `json:"reset_on_ban_expiry"`
		DecisionCacheTTL Duration `json:"decision_cache_ttl"`
	} `json:"gate"`

	Chat struct {
		HistoryLimit   int      `json:"history_limit"`
		HistoryIdleTTL Duration `json:"history_idle_ttl"`
	} `json:"chat"`

	Workers struct {
		JanitorSchedule string `json:"janitor_schedule"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
			AdminUsername: j.App.AdminUsername,
			AdminPassword: j.App.AdminPassword,
			EncryptionKey: j.App.EncryptionKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			AllowedOrigins: j.Server.AllowedOrigins,
			TrustedProxies: j.Server.TrustedProxies,
		},
		Adapter: Adapter{
			APIURL:         j.Adapter.APIURL,
			APIKey:         j.Adapter.APIKey,
			Model:          j.Adapter.Model,
			Temperature:    j.Adapter.Temperature,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Gate: Gate{
			Disabled:         j.Gate.Disabled,
			APIURL:           j.Gate.APIURL,
			APIKey:           j.Gate.APIKey,
			Model:            j.Gate.Model,
			Whitelist:        j.Gate.Whitelist,
			BlockThreshold:   j.Gate.BlockThreshold,
			BanDuration:      time.Duration(j.Gate.BanDuration),
			FailClosed:       j.Gate.FailClosed,
			ResetOnBanExpiry: j.Gate.ResetOnBanExpiry,
			DecisionCacheTTL: time.Duration(j.Gate.DecisionCacheTTL),
		},
		Chat: Chat{
			HistoryLimit:   j.Chat.HistoryLimit,
			HistoryIdleTTL: time.Duration(j.Chat.HistoryIdleTTL),
		},
		Workers: Workers{
			JanitorSchedule: j.Workers.JanitorSchedule,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
