// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

// knownErrors maps server messages back to the service errors that produced
// them, so callers can match with [errors.Is] on either side of the wire.
var knownErrors = func() map[string]error {
	m := make(map[string]error)
	for _, err := range []error{
		service.ErrEmptyCredentials,
		service.ErrEmptyTodoContent,
		service.ErrPasswordTooLong,
		service.ErrInvalidTodoID,
		service.ErrUsernameTaken,
		service.ErrInvalidCredentials,
		service.ErrUserNotFound,
		service.ErrDatabase,
		service.ErrInternal,
	} {
		m[err.Error()] = err
	}
	return m
}()

var statusKinds = map[int]error{
	http.StatusBadRequest:          service.ErrValidation,
	http.StatusConflict:            service.ErrConflict,
	http.StatusUnauthorized:        service.ErrAuth,
	http.StatusNotFound:            service.ErrNotFound,
	http.StatusInternalServerError: service.ErrStorage,
	http.StatusServiceUnavailable:  service.ErrStorage,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it returns the
// service error named by the body, the kind matching the status, or
// [ErrUnexpectedStatus].
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp.Body())
	if err, ok := knownErrors[msg]; ok {
		return err
	}

	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	if kind, ok := statusKinds[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", kind, msg)
	}
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), msg)
}

func errorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
