// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{ErrEmptyCredentials, ErrValidation},
		{ErrEmptyTodoContent, ErrValidation},
		{ErrPasswordTooLong, ErrValidation},
		{ErrUsernameTaken, ErrConflict},
		{ErrInvalidCredentials, ErrAuth},
		{ErrUserNotFound, ErrNotFound},
		{ErrDatabase, ErrStorage},
		{errors.New("other"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ErrUsernameTaken, storageError(ctx, "op", store.ErrUsernameAlreadyExists))
	assert.Equal(t, ErrUserNotFound, storageError(ctx, "op", fmt.Errorf("wrapped: %w", store.ErrNoUserWasFound)))

	pgErr := &pgconn.PgError{Code: pgerrcode.UndefinedTable, Message: "relation \"todos\" does not exist"}
	err := storageError(ctx, "op", fmt.Errorf("%w: %w", store.ErrExecutingQuery, pgErr))
	assert.Equal(t, ErrDatabase, err)
	assert.NotContains(t, err.Error(), "todos")

	var target *pgconn.PgError
	assert.False(t, errors.As(err, &target))
}
