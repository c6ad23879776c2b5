// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults. They mirror the original page, which talked to a gateway
// on 127.0.0.1:5000 and loaded model/house.glb.
const (
	DefaultGatewayURL        = "http://127.0.0.1:5000"
	DefaultServerAddress     = "127.0.0.1:5000"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultClientDSN         = "housebuilder-client.db"
	DefaultServerDSN         = "housebuilder.db"
	DefaultModelsDir         = "models"
	DefaultModelPath         = "/models/house.glb"
	DefaultPasswordMinLength = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordMinLength: DefaultPasswordMinLength,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultGatewayURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Preview: Preview{
			ModelPath: DefaultModelPath,
		},
		Storage: Storage{
			Files: Files{ModelsDir: DefaultModelsDir},
		},
	}
}
