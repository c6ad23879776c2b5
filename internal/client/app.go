// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/preview"
	"github.com/MKhiriev/go-house-builder/internal/service"
	"github.com/MKhiriev/go-house-builder/internal/store"
	"github.com/MKhiriev/go-house-builder/internal/tui"
	"github.com/MKhiriev/go-house-builder/models"
)

// App is the terminal page process.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp wires storage, gateway client, session machine, preview loader and
// terminal UI. A broken session database does not stop the client: the
// session store degrades to memory.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	log.Info().Stringer("build", buildInfo).Msg("creating client app")

	gateway, err := adapter.NewHTTPAuthGateway(cfg.Adapter, log.ForComponent("gateway"))
	if err != nil {
		return nil, fmt.Errorf("create auth gateway client: %w", err)
	}

	fetcher, err := adapter.NewHTTPAssetFetcher(cfg.Adapter, cfg.Preview, log.ForComponent("asset"))
	if err != nil {
		return nil, fmt.Errorf("create asset fetcher: %w", err)
	}

	storages := store.NewClientStorages(ctx, cfg.Storage, log.ForComponent("session_store"))
	services := service.NewClientServices(storages.SessionStore, gateway, log)
	loader := preview.NewLoader(fetcher, cfg.Preview, log.ForComponent("preview"))

	return &App{
		storages: storages,
		services: services,
		ui:       tui.New(services, loader, buildInfo, log.ForComponent("tui")),
		logger:   log,
	}, nil
}

// Run blocks until the visitor quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing session storage")
		}
	}()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("session", a.services.SessionMachine.State().Session.Status.String()).Msg("client stopped")
	return nil
}
