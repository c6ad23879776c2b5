// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/models"
)

const localSessionTable = "local_session"

// sqliteSessionStore keeps the session slot as a single row of the
// local_session table.
type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] backed by db. The schema
// must already be migrated.
func NewSQLiteSessionStore(db *DB, log *logger.Logger) SessionStore {
	return &sqliteSessionStore{db: db, logger: log}
}

func (s *sqliteSessionStore) Read(ctx context.Context) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Select("value").
		From(localSessionTable).
		Where(sq.Eq{"key": models.PersistedSessionKey}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var identity string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&identity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		log.Err(err).Str("func", "*sqliteSessionStore.Read").Msg("error reading session slot")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	identity = strings.TrimSpace(identity)
	return identity, identity != "", nil
}

func (s *sqliteSessionStore) Write(ctx context.Context, identity string) error {
	log := logger.FromContext(ctx)

	identity = strings.TrimSpace(identity)
	if identity == "" {
		return ErrEmptyIdentity
	}

	query, args, err := s.db.builder().
		Insert(localSessionTable).
		Columns("key", "value").
		Values(models.PersistedSessionKey, identity).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteSessionStore.Write").Msg("error writing session slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := s.db.builder().
		Delete(localSessionTable).
		Where(sq.Eq{"key": models.PersistedSessionKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteSessionStore.Clear").Msg("error clearing session slot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
