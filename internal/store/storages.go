// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
)

// Storages groups the gateway's persistence.
type Storages struct {
	UserRepository UserRepository

	// ModelsDir is the directory served under /models/. It exists once
	// [NewStorages] returns.
	ModelsDir string

	db *DB
}

// NewStorages connects to the users database, migrates it and makes sure the
// models directory exists.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectServerDB(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err = os.MkdirAll(cfg.ModelsDir, 0o755); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating models dir: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ModelsDir:      cfg.ModelsDir,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
