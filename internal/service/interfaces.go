// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-house-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SessionMachine

// SessionMachine owns the single page session. It is the only component
// that mutates the persisted session slot, and every method returns the
// view state after the transition.
type SessionMachine interface {
	// Restore reads the persisted slot once at startup.
	Restore(ctx context.Context) models.ViewState
	// Login signs in through the gateway.
	Login(ctx context.Context, email, password string) (models.ViewState, error)
	// Register creates an account through the gateway. It never signs in.
	Register(ctx context.Context, req models.RegisterRequest) (models.ViewState, error)
	// Logout signs out and invalidates any pending login.
	Logout(ctx context.Context) (models.ViewState, error)
	// ConfirmDesign handles the "confirm design" control.
	ConfirmDesign(ctx context.Context) models.ViewState
	// SelectTab switches between the sign-in and sign-up forms.
	SelectTab(tab models.AuthTab) (models.ViewState, error)
	// State returns the current view state.
	State() models.ViewState
	// DismissNotice clears the blocking notice.
	DismissNotice() models.ViewState
}

// AuthService implements the gateway's register and login rules.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// AppInfoService reports the running gateway build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
