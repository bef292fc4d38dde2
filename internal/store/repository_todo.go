// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the PostgreSQL-backed implementation of
// [TodoRepository]. Every statement carries the owner's user_id, so one user
// can never read or remove another user's todos.
type todoRepository struct {
	connector Connector
	logger    *logger.Logger
}

func NewTodoRepository(connector Connector, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		connector: connector,
		logger:    logger,
	}
}

// SaveTodo inserts content exactly as given and returns the stored row.
func (t *todoRepository) SaveTodo(ctx context.Context, owner models.IdentityContext, content string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	db, err := t.connector.Get(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	query, args, err := buildSaveTodoQuery(owner.UserID, content)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.SaveTodo").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&todo.ID, &todo.UserID, &todo.Content, &todo.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.SaveTodo").
			Int64("user_id", owner.UserID).
			Bool("retryable", db.retryable(err)).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// ListTodos returns up to limit todos of owner ordered by ID descending.
// An owner without todos gets an empty, non-nil slice.
func (t *todoRepository) ListTodos(ctx context.Context, owner models.IdentityContext, limit uint64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	db, err := t.connector.Get(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildListTodosQuery(owner.UserID, limit)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.ListTodos").
			Int64("user_id", owner.UserID).
			Bool("retryable", db.retryable(err)).
			Msg("failed to execute query for listing todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, limit)

	for rows.Next() {
		var todo models.Todo
		if scanErr := rows.Scan(&todo.ID, &todo.UserID, &todo.Content, &todo.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*todoRepository.ListTodos").
				Int64("user_id", owner.UserID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*todoRepository.ListTodos").
			Int64("user_id", owner.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// DeleteTodo removes todoID if owner owns it. A missing or foreign ID is not
// an error; the returned count is simply 0.
func (t *todoRepository) DeleteTodo(ctx context.Context, owner models.IdentityContext, todoID int64) (int64, error) {
	log := logger.FromContext(ctx)

	db, err := t.connector.Get(ctx)
	if err != nil {
		return 0, err
	}

	query, args, err := buildDeleteTodoQuery(owner.UserID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.DeleteTodo").
			Int64("user_id", owner.UserID).
			Int64("todo_id", todoID).
			Bool("retryable", db.retryable(err)).
			Msg("failed to delete todo")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("failed to count deleted rows")
		return 0, fmt.Errorf("%w: %w", ErrCountingAffectedRows, err)
	}

	log.Debug().
		Str("func", "*todoRepository.DeleteTodo").
		Int64("user_id", owner.UserID).
		Int64("todo_id", todoID).
		Int64("deleted", deleted).
		Msg("todo delete executed")

	return deleted, nil
}
