// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrConflict:   http.StatusConflict,
	service.ErrAuth:       http.StatusUnauthorized,
	service.ErrNotFound:   http.StatusNotFound,
	service.ErrStorage:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func isKnownError(err error) bool {
	return service.Kind(err) != nil
}
