// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type appInfoService struct {
	appVersion string
	connector  store.Connector

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, connector store.Connector, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		connector:  connector,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping obtains the pool, creating it on first use, and pings it. Failures are
// reported as [ErrDatabase].
func (s *appInfoService) Ping(ctx context.Context) error {
	db, err := s.connector.Get(ctx)
	if err != nil {
		return storageError(ctx, "ping.get_pool", err)
	}

	if err = db.PingContext(ctx); err != nil {
		return storageError(ctx, "ping", err)
	}

	return nil
}
