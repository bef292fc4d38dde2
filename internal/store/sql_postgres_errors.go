// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// if attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err down to a *pgconn.PgError and classifies its code.
// Broken pooled connections are retryable; anything unrecognised is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to a classification. Connection
// exceptions (class 08) and transaction rollbacks (class 40) are retryable,
// as are server restarts and connection-limit rejections. Constraint
// violations, data exceptions and syntax errors are not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	}

	switch code {
	case pgerrcode.AdminShutdown, // 57P01
		pgerrcode.CrashShutdown,      // 57P02
		pgerrcode.CannotConnectNow,   // 57P03
		pgerrcode.TooManyConnections: // 53300
		return Retryable
	}

	return NonRetryable
}

// IsRetryable reports whether err, possibly wrapped, is worth retrying.
func IsRetryable(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == Retryable
}
