// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/internal/utils"
	"github.com/MKhiriev/go-house-builder/models"
)

type httpAuthGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthGateway constructs the HTTP implementation of [AuthGateway].
// It normalises and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every round trip.
func NewHTTPAuthGateway(cfg config.ClientAdapter, logger *logger.Logger) (AuthGateway, error) {
	client, err := newGatewayClient(cfg)
	if err != nil {
		return nil, err
	}

	return &httpAuthGateway{client: client, logger: logger}, nil
}

func newGatewayClient(cfg config.ClientAdapter) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [AuthGateway].
func (h *httpAuthGateway) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var out models.LoginResponse
	if err := h.postJSON(ctx, "/api/login", models.LoginRequest{Email: email, Password: password}, &out); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpAuthGateway.Login").Msg("login round trip failed")
		return models.LoginResponse{}, err
	}

	return out, nil
}

// Register implements [AuthGateway].
func (h *httpAuthGateway) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse
	if err := h.postJSON(ctx, "/api/register", req, &out); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpAuthGateway.Register").Msg("register round trip failed")
		return models.RegisterResponse{}, err
	}

	return out, nil
}

func (h *httpAuthGateway) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}

	return nil
}
