// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the username of credentials or of a todo owner.
	FieldUsername = "username"

	// FieldPassword targets the credential supplied at register or login.
	FieldPassword = "password"

	// FieldContent targets the text of a todo.
	FieldContent = "content"

	// FieldTodoID targets the identifier of a todo to delete.
	FieldTodoID = "todo_id"
)

// TodoValidator implements [Validator] for the todo domain: credentials
// ([models.Credentials], [models.User]) and todos ([models.SaveTodoRequest],
// [models.Todo]).
//
// Required text fields are checked after trimming surrounding whitespace, so
// "   " counts as empty. Nothing is rewritten; valid input is stored as given.
type TodoValidator struct{}

func NewTodoValidator() *TodoValidator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of data. Both values and pointers
// are accepted.
func (v *TodoValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.Credentials:
		return v.validateCredentials(value.Username, value.Password, fields...)
	case *models.Credentials:
		return v.validateCredentials(value.Username, value.Password, fields...)

	case models.User:
		return v.validateCredentials(value.Username, value.Password, fields...)
	case *models.User:
		return v.validateCredentials(value.Username, value.Password, fields...)

	case models.SaveTodoRequest:
		return v.validateTodo(value.Content, 0, fields...)
	case *models.SaveTodoRequest:
		return v.validateTodo(value.Content, 0, fields...)

	case models.Todo:
		return v.validateTodo(value.Content, value.ID, fields...)
	case *models.Todo:
		return v.validateTodo(value.Content, value.ID, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateCredentials(username, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if isBlank(password) {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateTodo(content string, todoID int64, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if isBlank(content) {
				return ErrEmptyContent
			}
		case FieldTodoID:
			if todoID <= 0 {
				return ErrInvalidTodoID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
