// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/models"
)

// Services groups the gateway's business services.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create auth service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
