// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

// storageError converts a repository error into a service error.
//
// Known domain conditions keep their meaning. Anything else is logged in full
// and replaced by [ErrDatabase], so driver messages, SQL text and connection
// strings stay on the server.
func storageError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).
		Str("op", op).
		Bool("retryable", store.IsRetryable(err)).
		Str("pg_code", store.PostgresErrorCode(err)).
		Msg("storage operation failed")

	return ErrDatabase
}
