// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewCredentialHasher_Schemes(t *testing.T) {
	assert.IsType(t, bcryptHasher{}, NewCredentialHasher(config.CredentialSchemeBcrypt))
	assert.IsType(t, plainHasher{}, NewCredentialHasher(config.CredentialSchemePlain))
	assert.IsType(t, bcryptHasher{}, NewCredentialHasher(""))
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := bcryptHasher{cost: bcrypt.MinCost}

	stored, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored)

	assert.True(t, h.Compare(stored, "s3cret"))
	assert.False(t, h.Compare(stored, "S3cret"))
	assert.False(t, h.Compare("not-a-hash", "s3cret"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	h := bcryptHasher{cost: bcrypt.MinCost}

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := bcryptHasher{cost: bcrypt.MinCost}

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlainHasher(t *testing.T) {
	h := plainHasher{}

	stored, err := h.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, h.Compare("pw", "pw"))
	assert.False(t, h.Compare("pw", "pw "))
	assert.False(t, h.Compare("pw", ""))
}

func TestHasher_Accepts(t *testing.T) {
	bh := bcryptHasher{cost: bcrypt.MinCost}
	assert.NoError(t, bh.Accepts(strings.Repeat("x", 72)))
	assert.ErrorIs(t, bh.Accepts(strings.Repeat("x", 73)), ErrPasswordTooLong)
	// 25 three-byte runes: 75 bytes.
	assert.ErrorIs(t, bh.Accepts(strings.Repeat("€", 25)), ErrPasswordTooLong)

	assert.NoError(t, plainHasher{}.Accepts(strings.Repeat("x", 1000)))
}
