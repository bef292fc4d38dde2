// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// Each method field can be overridden per test case. A nil field panics,
// which the tests treat as "must not be called".

type mockAuthService struct {
	registerFn func(ctx context.Context, credentials models.Credentials) error
	loginFn    func(ctx context.Context, credentials models.Credentials) error
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) error {
	return m.registerFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	return m.loginFn(ctx, credentials)
}

type mockTodoService struct {
	saveTodoFn   func(ctx context.Context, username, content string) (models.Todo, error)
	listTodosFn  func(ctx context.Context, username string) ([]models.Todo, error)
	deleteTodoFn func(ctx context.Context, username string, todoID int64) error
}

func (m *mockTodoService) SaveTodo(ctx context.Context, username, content string) (models.Todo, error) {
	return m.saveTodoFn(ctx, username, content)
}

func (m *mockTodoService) ListTodos(ctx context.Context, username string) ([]models.Todo, error) {
	return m.listTodosFn(ctx, username)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, username string, todoID int64) error {
	return m.deleteTodoFn(ctx, username, todoID)
}

type mockAppInfoService struct {
	version string
	pingErr error
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Ping(context.Context) error {
	return m.pingErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, todos service.TodoService) *Handler {
	return NewHandler(&service.Services{
		AuthService:    auth,
		TodoService:    todos,
		AppInfoService: &mockAppInfoService{version: "test"},
	}, logger.Nop())
}
