// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Todo is a single todo entry owned by exactly one [User].
// Todos are never edited in place.
type Todo struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"-"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
