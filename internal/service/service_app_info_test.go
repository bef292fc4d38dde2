// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, nil, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Ping
// ─────────────────────────────────────────────

func TestPing_PoolUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := mock.NewMockConnector(ctrl)
	connector.EXPECT().Get(gomock.Any()).Return(nil, store.ErrConnectingStorage)

	svc, err := NewAppInfoService(config.App{Version: "dev"}, connector, logger.Nop())
	require.NoError(t, err)

	err = svc.Ping(context.Background())
	assert.ErrorIs(t, err, ErrDatabase)
}

func TestPing_Success(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	sqlMock.ExpectPing()

	ctrl := gomock.NewController(t)
	connector := mock.NewMockConnector(ctrl)
	connector.EXPECT().Get(gomock.Any()).Return(&store.DB{DB: sqlDB}, nil)

	svc, err := NewAppInfoService(config.App{Version: "dev"}, connector, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, svc.Ping(context.Background()))
	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPing_PingFails(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctrl := gomock.NewController(t)
	connector := mock.NewMockConnector(ctrl)
	connector.EXPECT().Get(gomock.Any()).Return(&store.DB{DB: sqlDB}, nil)

	svc, err := NewAppInfoService(config.App{Version: "dev"}, connector, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Ping(context.Background()), ErrDatabase)
}
