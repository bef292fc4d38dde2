// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the relational schema of the todo store and
// applies it with goose.
//
// Every migration uses "IF NOT EXISTS" semantics, so applying them against a
// database that was bootstrapped by hand (or by an older build without the
// goose version table) is safe.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when it is called without a database.
var ErrNilDB = errors.New("db is nil")

// Migrate brings the schema of db up to date: the users table and the todos
// table that references it with a cascading foreign key.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
