// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the gateway's configuration view.
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// ServerApp holds the registration rules enforced by the gateway.
type ServerApp struct {
	PasswordMinLength int
}

// ServerHTTP holds listen settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerStorage holds the users database DSN and the served models directory.
type ServerStorage struct {
	DSN       string
	ModelsDir string
}

// GetServerConfig builds and validates the gateway config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	if err := serverCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating server config: %w", err)
	}

	return serverCfg, nil
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultServerDSN
	}

	return &ServerConfig{
		App: ServerApp{
			PasswordMinLength: cfg.App.PasswordMinLength,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DSN:       dsn,
			ModelsDir: cfg.Storage.Files.ModelsDir,
		},
	}
}
