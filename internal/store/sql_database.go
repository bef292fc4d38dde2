// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB is the shared connection pool together with the error classifier used to
// annotate storage failures in logs.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations to the pool.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		return fmt.Errorf("%w: %w", ErrInitializingSchema, err)
	}
	return nil
}

// retryable reports whether err is a transient database failure.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
