// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-house-builder/internal/logger"
	"github.com/MKhiriev/go-house-builder/migrations"
)

// DB wraps a database handle together with the dialect it was opened with.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Dialect returns the goose/database-sql driver name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// MigrateClient applies the local session schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// MigrateServer applies the users schema for the connection's dialect.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB, db.dialect)
}

// builder returns a squirrel statement builder with the placeholder format
// of the connection's dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// isPostgresDSN reports whether dsn selects the pgx driver.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
