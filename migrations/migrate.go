// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds and applies the goose schema migrations for the
// client's session database and the gateway's users database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialects understood by [MigrateServer].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed client/*.sql server/postgres/*.sql server/sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// MigrateClient applies the local_session schema to the client's SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, DialectSQLite, "client")
}

// MigrateServer applies the users schema for the given dialect.
func MigrateServer(db *sql.DB, dialect string) error {
	switch dialect {
	case DialectPostgres:
		return migrate(db, dialect, "server/postgres")
	case DialectSQLite:
		return migrate(db, dialect, "server/sqlite")
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
