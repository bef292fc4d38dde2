// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Connector hands out the shared, schema-ready connection pool. The first
// call creates it; later calls reuse it.
type Connector interface {
	Get(ctx context.Context) (*DB, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists and looks up user identities in the users table.
type UserRepository interface {
	// CreateUser inserts user and returns it with its generated ID. A taken
	// username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the full user row, stored credential
	// included, or [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// ResolveUserID returns the ID of username or [ErrNoUserWasFound].
	ResolveUserID(ctx context.Context, username string) (int64, error)
}

// TodoRepository persists todos. Every method is scoped to the owner carried
// by the identity context.
type TodoRepository interface {
	SaveTodo(ctx context.Context, owner models.IdentityContext, content string) (models.Todo, error)
	// ListTodos returns at most limit todos of owner, newest (highest ID) first.
	ListTodos(ctx context.Context, owner models.IdentityContext, limit uint64) ([]models.Todo, error)
	// DeleteTodo removes todoID when it belongs to owner and reports the
	// number of rows removed (0 or 1).
	DeleteTodo(ctx context.Context, owner models.IdentityContext, todoID int64) (int64, error)
}
