// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-todo-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	usersTable = models.User{}.TableName()
	todosTable = models.Todo{}.TableName()
)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(usersTable).
		Columns("username", "password").
		Values(user.Username, user.Password).
		Suffix("RETURNING id, username, password, created_at").
		ToSql()
}

func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.
		Select("id", "username", "password", "created_at").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildResolveUserIDQuery(username string) (string, []any, error) {
	return psql.
		Select("id").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSaveTodoQuery(userID int64, content string) (string, []any, error) {
	return psql.
		Insert(todosTable).
		Columns("user_id", "content").
		Values(userID, content).
		Suffix("RETURNING id, user_id, content, created_at").
		ToSql()
}

// buildListTodosQuery selects the newest limit todos of one user. The
// (user_id, id DESC) index serves it.
func buildListTodosQuery(userID int64, limit uint64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "content", "created_at").
		From(todosTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}

func buildDeleteTodoQuery(userID, todoID int64) (string, []any, error) {
	return psql.
		Delete(todosTable).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}
