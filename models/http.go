// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of the register and login calls.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SaveTodoRequest is the body of the save call.
type SaveTodoRequest struct {
	Content string `json:"content"`
}

// ErrorResponse is written by the HTTP layer for every failed call.
// Message is always safe to show to an end user.
type ErrorResponse struct {
	Error string `json:"error"`
}
