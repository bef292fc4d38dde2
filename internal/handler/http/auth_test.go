// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "success", body: `{"username":"alice","password":"pw"}`, wantStatus: http.StatusOK},
		{name: "invalid json", body: `{"username":`, wantStatus: http.StatusBadRequest, wantError: "invalid data provided"},
		{name: "blank credentials", body: `{"username":" ","password":"pw"}`, err: service.ErrEmptyCredentials, wantStatus: http.StatusBadRequest, wantError: "username and password cannot be empty"},
		{name: "taken", body: `{"username":"alice","password":"pw"}`, err: service.ErrUsernameTaken, wantStatus: http.StatusConflict, wantError: "username already taken"},
		{name: "storage", body: `{"username":"alice","password":"pw"}`, err: service.ErrDatabase, wantStatus: http.StatusInternalServerError, wantError: "a database error occurred"},
		{name: "unclassified", body: `{"username":"alice","password":"pw"}`, err: errors.New("dial tcp 10.0.0.5:5432"), wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, c models.Credentials) error {
					assert.Equal(t, "pw", c.Password)
					return tt.err
				},
			}
			h := newTestHandler(auth, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantError: "invalid username or password"},
		{name: "blank credentials", err: service.ErrEmptyCredentials, wantStatus: http.StatusBadRequest, wantError: "username and password cannot be empty"},
		{name: "storage", err: service.ErrDatabase, wantStatus: http.StatusInternalServerError, wantError: "a database error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, c models.Credentials) error {
					assert.Equal(t, "alice", c.Username)
					return tt.err
				},
			}
			h := newTestHandler(auth, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
			rec := httptest.NewRecorder()
			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
			}
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeError(t, rec))
}
