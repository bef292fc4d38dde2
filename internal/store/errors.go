// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists. Two
	// concurrent registrations of one name race on the unique index and the
	// loser receives this error.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrConnectingStorage is returned when the connection pool could not be
	// initialized (connect, ping or schema migration failed).
	ErrConnectingStorage = errors.New("error connecting storage")

	// ErrPoolClosed is returned by an initialization that was overtaken by
	// Close. It is always wrapped in ErrConnectingStorage.
	ErrPoolClosed = errors.New("connection pool closed during initialization")

	// ErrInitializingSchema is returned when the schema migration of a freshly
	// opened pool fails.
	ErrInitializingSchema = errors.New("error initializing schema")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or an
	// INSERT ... RETURNING against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrCountingAffectedRows is returned when the driver cannot report the
	// number of rows touched by a statement.
	ErrCountingAffectedRows = errors.New("failed to count affected rows")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
