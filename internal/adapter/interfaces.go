// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the todo server HTTP API.
//
// [ServerAdapter] hides the transport from the command-line client. Error
// responses are mapped back to the service errors defined in
// internal/service, so callers can use [errors.Is] with the same sentinels
// the server uses (e.g. service.ErrUsernameTaken for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the todo
// server.
type ServerAdapter interface {
	// Register creates a new account.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login checks credentials without opening a session.
	Login(ctx context.Context, credentials models.Credentials) error

	// SaveTodo stores content for username and returns the created todo.
	SaveTodo(ctx context.Context, username, content string) (models.Todo, error)

	// ListTodos returns the newest todos of username, newest first.
	ListTodos(ctx context.Context, username string) ([]models.Todo, error)

	// DeleteTodo removes todoID if it belongs to username.
	DeleteTodo(ctx context.Context, username string, todoID int64) error

	// Ping reports whether the server can reach its database.
	Ping(ctx context.Context) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
