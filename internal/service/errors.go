// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
)

// Error kinds. Every error returned by a service matches exactly one of them
// with [errors.Is]; transports map kinds to their own status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict error")
	ErrAuth       = errors.New("auth error")
	ErrNotFound   = errors.New("not found error")
	ErrStorage    = errors.New("storage error")
)

// kindError is a user-safe error message tagged with its kind.
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

var (
	ErrEmptyCredentials = newKindError(ErrValidation, app.MsgEmptyCredentials)
	ErrEmptyTodoContent = newKindError(ErrValidation, app.MsgEmptyTodoContent)
	ErrPasswordTooLong  = newKindError(ErrValidation, app.MsgPasswordTooLong)
	ErrInvalidTodoID    = newKindError(ErrValidation, app.MsgInvalidTodoID)

	ErrUsernameTaken = newKindError(ErrConflict, app.MsgUsernameTaken)

	// ErrInvalidCredentials is shared by the unknown-username and the
	// wrong-password paths of login.
	ErrInvalidCredentials = newKindError(ErrAuth, app.MsgInvalidCredentials)

	ErrUserNotFound = newKindError(ErrNotFound, app.MsgUserNotFound)

	// ErrDatabase replaces every storage failure. The original error is logged
	// and never wrapped.
	ErrDatabase = newKindError(ErrStorage, app.MsgDatabaseError)
	ErrInternal = newKindError(ErrStorage, app.MsgInternalServerError)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Kind returns the kind sentinel err belongs to, or nil for an unclassified
// error.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrAuth, ErrNotFound, ErrStorage} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
