// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups the repositories of the server together with the pool they
// share.
type Storages struct {
	Pool           *PoolManager
	UserRepository UserRepository
	TodoRepository TodoRepository
}

// NewStorages wires both repositories to one lazily initialized pool. No
// connection is made until the first repository call.
func NewStorages(cfg config.Storage, log *logger.Logger) *Storages {
	pool := NewPoolManager(cfg.DB, log)
	return &Storages{
		Pool:           pool,
		UserRepository: NewUserRepository(pool, log),
		TodoRepository: NewTodoRepository(pool, log),
	}
}

// Close releases the pool.
func (s *Storages) Close() error {
	return s.Pool.Close()
}
