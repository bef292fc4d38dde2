// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// todo server and client.
//
// All Msg* constants are human-readable, user-safe message strings written
// into HTTP error bodies. The client matches them to restore typed errors, so
// the wording is part of the wire contract.
package app

const (
	// MsgEmptyCredentials is returned when the username or the password is
	// empty or whitespace-only.
	MsgEmptyCredentials = "username and password cannot be empty"

	// MsgEmptyTodoContent is returned when todo content is empty or
	// whitespace-only.
	MsgEmptyTodoContent = "todo content cannot be empty"

	// MsgPasswordTooLong is returned when the password exceeds what the
	// credential hasher accepts (72 bytes for bcrypt).
	MsgPasswordTooLong = "password is too long"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidTodoID is returned when the todo ID in the path is not a
	// positive integer.
	MsgInvalidTodoID = "invalid todo id"

	// MsgUsernameTaken is returned when registration hits an existing username.
	MsgUsernameTaken = "username already taken"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgUserNotFound is returned when a todo operation names an unknown owner.
	MsgUserNotFound = "user not found"

	// MsgDatabaseError is the only text that ever describes a storage failure.
	MsgDatabaseError = "a database error occurred"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is the ping response body when the pool cannot be
	// obtained.
	MsgStorageUnavailable = "storage unavailable"
)
