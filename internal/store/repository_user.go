// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	connector Connector
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] that borrows connections
// from connector.
func NewUserRepository(connector Connector, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		connector: connector,
		logger:    logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID and creation time.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.Get(ctx)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Username, &created.Password, &created.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", db.retryable(err)).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.Get(ctx)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.Password, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Bool("retryable", db.retryable(err)).
			Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ResolveUserID maps a username to its ID without reading the credential.
func (r *userRepository) ResolveUserID(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	db, err := r.connector.Get(ctx)
	if err != nil {
		return 0, err
	}

	query, args, err := buildResolveUserIDQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResolveUserID").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ResolveUserID").
			Bool("retryable", db.retryable(err)).
			Msg("failed to resolve user id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return userID, nil
}
