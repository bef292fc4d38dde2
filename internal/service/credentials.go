// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher turns a password into the value kept in the users table
// and checks a login attempt against it.
type CredentialHasher interface {
	// Accepts reports whether password can be hashed by this scheme. It is
	// cheap and runs before any storage access.
	Accepts(password string) error
	Hash(password string) (string, error)
	Compare(stored, password string) bool
}

// NewCredentialHasher returns the hasher for scheme. Unknown schemes fall
// back to bcrypt.
func NewCredentialHasher(scheme string) CredentialHasher {
	if scheme == config.CredentialSchemePlain {
		return plainHasher{}
	}
	return bcryptHasher{cost: bcrypt.DefaultCost}
}

// maxBcryptPasswordLength is the input limit of bcrypt in bytes.
const maxBcryptPasswordLength = 72

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Accepts(password string) error {
	if len(password) > maxBcryptPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (h bcryptHasher) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// plainHasher stores the password as is. It exists for databases populated
// by earlier plain-text deployments.
type plainHasher struct{}

func (plainHasher) Accepts(string) error {
	return nil
}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Compare(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
