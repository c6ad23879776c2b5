// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the auth gateway.
//
// [AuthGateway] wraps the two remote operations (login, register) as single
// request/response round trips. [AssetFetcher] downloads the 3D model asset
// for the preview panel. Both are implemented over HTTP with resty.
//
// Failures never panic past this boundary: transport errors, non-2xx
// statuses and undecodable bodies come back as a zero result wrapped around
// one of the sentinels in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-house-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthGateway is the stateless client of the remote login/register service.
type AuthGateway interface {
	// Login posts the credentials to /api/login. A transport-level success
	// with success=false is returned as a response with a nil error.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// Register posts the sign-up form to /api/register. It does not check
	// that the password and its confirmation are equal.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
}

// AssetFetcher downloads a static asset from the gateway.
type AssetFetcher interface {
	// Fetch GETs path and reports (loaded, total) byte counts as the body
	// streams in. total is -1 when the server does not announce a length.
	Fetch(ctx context.Context, path string, progress func(loaded, total int64)) ([]byte, error)
}
