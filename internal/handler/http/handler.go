// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// maxRequestBodySize bounds JSON request bodies.
const maxRequestBodySize = 1 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: config.DefaultRequestTimeout,
		logger:         logger,
	}
}

// WithRequestTimeout sets the per-request deadline applied by the router.
// Non-positive values keep the current one.
func (h *Handler) WithRequestTimeout(timeout time.Duration) *Handler {
	if timeout > 0 {
		h.requestTimeout = timeout
	}
	return h
}
