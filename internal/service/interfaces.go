// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// AuthService registers identities and checks credentials. No session is
// created; callers keep the authenticated username themselves.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) error
}

// TodoService manages the todos of one owner, named by username.
type TodoService interface {
	SaveTodo(ctx context.Context, username, content string) (models.Todo, error)
	// ListTodos returns the newest todos of username, at most [TodoListLimit].
	ListTodos(ctx context.Context, username string) ([]models.Todo, error)
	DeleteTodo(ctx context.Context, username string, todoID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the storage pool can be obtained and reached.
	Ping(ctx context.Context) error
}
