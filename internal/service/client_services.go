// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/page"
	"github.com/MKhiriev/go-house-builder/internal/store"
)

// ClientServices holds the page controllers and the session machine that
// drives them.
type ClientServices struct {
	Regions        *page.Regions
	Forms          *page.AuthForms
	SessionMachine SessionMachine
}

func NewClientServices(sessionStore store.SessionStore, gateway adapter.AuthGateway, logger *logger.Logger) *ClientServices {
	regions := page.NewRegions()
	forms := page.NewAuthForms()

	return &ClientServices{
		Regions:        regions,
		Forms:          forms,
		SessionMachine: NewSessionMachine(sessionStore, gateway, regions, forms, logger.ForComponent("session")),
	}
}
