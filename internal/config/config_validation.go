// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants that hold for every binary. Binary-specific
// rules live on [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PasswordMinLength < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Preview.ModelPath == "" || cfg.Preview.FetchTimeout < 0 {
		return ErrInvalidPreviewConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DSN == "" || cfg.Storage.ModelsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PasswordMinLength < 1 {
		return ErrInvalidAppConfigs
	}

	return nil
}
