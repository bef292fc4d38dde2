// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered identity. It is created once by registration and is
// never updated afterwards.
type User struct {
	// ID is the store-generated identifier. It is the scoping key for every
	// todo operation and is never exposed via JSON.
	ID int64 `json:"-"`

	// Username is unique and case-sensitive.
	Username string `json:"username"`

	// Password is the credential as received from the caller on the way in,
	// and the stored credential (hash or opaque string, depending on the
	// configured scheme) on the way out of the repository.
	Password string `json:"password"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
