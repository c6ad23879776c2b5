// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-builder/internal/config"
	"github.com/MKhiriev/go-house-builder/internal/logger"
)

// ClientStorages groups the client-side storage used by the page.
type ClientStorages struct {
	// SessionStore is the persisted session slot. It degrades to memory
	// instead of failing.
	SessionStore *DegradingSessionStore

	db *DB
}

// NewClientStorages opens the SQLite session database and runs its
// migrations. If either step fails the client still gets a working,
// memory-only session store and the failure is reported by
// [DegradingSessionStore.Degraded].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) *ClientStorages {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		log.Warn().Err(err).Msg("session database unavailable, using memory")
		return &ClientStorages{SessionStore: NewDegradingSessionStore(nil, err, log)}
	}

	if err = db.MigrateClient(); err != nil {
		log.Warn().Err(err).Msg("session database migration failed, using memory")
		_ = db.Close()
		return &ClientStorages{SessionStore: NewDegradingSessionStore(nil, fmt.Errorf("migration failed: %w", err), log)}
	}

	return &ClientStorages{
		SessionStore: NewDegradingSessionStore(NewSQLiteSessionStore(db, log), nil, log),
		db:           db,
	}
}

// Close releases the session database if one was opened.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
