// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-house-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore is the durable slot holding at most one signed-in identity.
// Writes always replace the whole value and Clear always removes it.
type SessionStore interface {
	// Read returns the persisted identity and whether one is present.
	Read(ctx context.Context) (string, bool, error)
	// Write replaces the persisted identity.
	Write(ctx context.Context, identity string) error
	// Clear removes the persisted identity.
	Clear(ctx context.Context) error
}

// UserRepository persists the gateway's user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
