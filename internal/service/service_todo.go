// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoListLimit is the size of the recency window returned by ListTodos.
const TodoListLimit uint64 = 10

type todoService struct {
	userRepository store.UserRepository
	todoRepository store.TodoRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewTodoService(userRepository store.UserRepository, todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		userRepository: userRepository,
		todoRepository: todoRepository,
		validator:      validators.NewTodoValidator(),
		logger:         logger,
	}
}

// resolveOwner turns username into the identity every todo query is scoped
// by. It never creates a user.
func (s *todoService) resolveOwner(ctx context.Context, username string) (models.IdentityContext, error) {
	if strings.TrimSpace(username) == "" {
		return models.IdentityContext{}, ErrUserNotFound
	}

	userID, err := s.userRepository.ResolveUserID(ctx, username)
	if err != nil {
		return models.IdentityContext{}, storageError(ctx, "todo.resolve_owner", err)
	}

	return models.IdentityContext{UserID: userID, Username: username}, nil
}

// SaveTodo stores content for username exactly as given. Blank content is
// rejected with [ErrEmptyTodoContent] before any storage access.
func (s *todoService) SaveTodo(ctx context.Context, username, content string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.SaveTodoRequest{Content: content}); err != nil {
		log.Debug().Err(err).Str("username", username).Msg("invalid todo content")
		return models.Todo{}, ErrEmptyTodoContent
	}

	owner, err := s.resolveOwner(ctx, username)
	if err != nil {
		return models.Todo{}, err
	}

	todo, err := s.todoRepository.SaveTodo(ctx, owner, content)
	if err != nil {
		return models.Todo{}, storageError(ctx, "todo.save", err)
	}

	log.Info().Int64("user_id", owner.UserID).Int64("todo_id", todo.ID).Msg("todo saved")
	return todo, nil
}

// ListTodos returns at most [TodoListLimit] todos of username, newest first.
// The result is never nil.
func (s *todoService) ListTodos(ctx context.Context, username string) ([]models.Todo, error) {
	owner, err := s.resolveOwner(ctx, username)
	if err != nil {
		return nil, err
	}

	todos, err := s.todoRepository.ListTodos(ctx, owner, TodoListLimit)
	if err != nil {
		return nil, storageError(ctx, "todo.list", err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	logger.FromContext(ctx).Debug().
		Int64("user_id", owner.UserID).
		Int("count", len(todos)).
		Msg("todos listed")
	return todos, nil
}

// DeleteTodo removes todoID when username owns it. Deleting a todo that does
// not exist or belongs to someone else succeeds without effect, so the
// response never reveals another user's todos.
func (s *todoService) DeleteTodo(ctx context.Context, username string, todoID int64) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Todo{ID: todoID}, validators.FieldTodoID); err != nil {
		return ErrInvalidTodoID
	}

	owner, err := s.resolveOwner(ctx, username)
	if err != nil {
		return err
	}

	deleted, err := s.todoRepository.DeleteTodo(ctx, owner, todoID)
	if err != nil {
		return storageError(ctx, "todo.delete", err)
	}

	log.Info().
		Int64("user_id", owner.UserID).
		Int64("todo_id", todoID).
		Int64("deleted", deleted).
		Msg("todo delete handled")
	return nil
}
