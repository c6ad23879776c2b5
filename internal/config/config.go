// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the gateway. Each binary maps the fields it needs into its own
// view ([ClientConfig], [ServerConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for persistence backends: the client's
	// session database and the gateway's users database and model files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the gateway's listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's outbound gateway settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Preview holds the 3D preview asset settings.
	Preview Preview `envPrefix:"PREVIEW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordMinLength is the minimum accepted password length on sign up.
	// Env: APP_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// LogFile is where the client writes its JSON log. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directory settings for served model files.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. For the gateway a postgres://
	// URL selects pgx and anything else is treated as a SQLite file; for the
	// client it is always a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the gateway's model directory.
type Files struct {
	// ModelsDir is the directory served under /models/.
	// Env: STORAGE_FILES_MODELS_DIR
	ModelsDir string `env:"MODELS_DIR"`
}

// Server holds network and timeout settings for the gateway.
type Server struct {
	// HTTPAddress is the TCP address on which the gateway listens,
	// in "host:port" format (e.g. "127.0.0.1:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound gateway settings.
type Adapter struct {
	// HTTPAddress is the base URL of the auth gateway.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each login/register round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Preview holds the 3D preview collaborator settings.
type Preview struct {
	// ModelPath is the gateway path of the model asset, e.g. "/models/house.glb".
	// Env: PREVIEW_MODEL_PATH
	ModelPath string `env:"MODEL_PATH"`

	// FetchTimeout bounds the whole asset download. Zero means no limit;
	// the adapter's RequestTimeout still bounds the wait for headers.
	// Env: PREVIEW_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// defaults, environment variables, command-line flags, and the optional JSON
// file, in that order (last source wins for non-zero fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
