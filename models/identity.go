// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityContext is the owner of a todo operation, resolved from a username
// once per request and passed down to the storage layer.
type IdentityContext struct {
	UserID   int64
	Username string
}
