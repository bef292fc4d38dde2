// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"golang.org/x/sync/singleflight"
)

// Opener creates a connected, schema-ready pool.
type Opener func(ctx context.Context) (*DB, error)

// PoolManager owns the process-wide connection pool and creates it lazily on
// first use.
//
// Concurrent first callers share one initialization attempt and observe the
// same pool, or the same error. A failed attempt leaves nothing cached, so the
// next call tries again. Once a pool exists, Get is a single atomic load.
type PoolManager struct {
	db             atomic.Pointer[DB]
	group          singleflight.Group
	open           Opener
	connectTimeout time.Duration
	logger         *logger.Logger

	// generation is bumped by Close. An initialization that started in an
	// older generation must not publish its pool.
	generation atomic.Uint64
}

// NewPoolManager returns a [PoolManager] that connects to cfg.DSN and applies
// the schema migrations the first time [PoolManager.Get] is called.
func NewPoolManager(cfg config.DB, log *logger.Logger) *PoolManager {
	return newPoolManager(func(ctx context.Context) (*DB, error) {
		return openAndMigrate(ctx, cfg, log)
	}, cfg.ConnectTimeout, log)
}

func newPoolManager(open Opener, connectTimeout time.Duration, log *logger.Logger) *PoolManager {
	if connectTimeout <= 0 {
		connectTimeout = config.DefaultConnectTimeout
	}
	return &PoolManager{
		open:           open,
		connectTimeout: connectTimeout,
		logger:         log,
	}
}

// Get returns the shared pool, initializing it if needed.
//
// The initialization itself is detached from ctx cancellation and bounded by
// the connect timeout, so one impatient caller cannot fail the attempt for
// the others. ctx only bounds how long this caller waits for it.
func (p *PoolManager) Get(ctx context.Context) (*DB, error) {
	if db := p.db.Load(); db != nil {
		return db, nil
	}

	ch := p.group.DoChan("pool", func() (any, error) {
		if db := p.db.Load(); db != nil {
			return db, nil
		}

		generation := p.generation.Load()
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.connectTimeout)
		defer cancel()

		db, err := p.open(openCtx)
		if err != nil {
			p.logger.Err(err).Str("func", "*PoolManager.Get").Msg("failed to initialize connection pool")
			return nil, err
		}

		p.db.Store(db)
		if p.generation.Load() != generation {
			// Close ran during the open. Whichever side takes the pointer
			// back closes the pool.
			if p.db.CompareAndSwap(db, nil) {
				_ = db.Close()
			}
			p.logger.Warn().Str("func", "*PoolManager.Get").Msg("connection pool closed during initialization")
			return nil, ErrPoolClosed
		}
		p.logger.Info().Str("func", "*PoolManager.Get").Msg("connection pool initialized")
		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrConnectingStorage, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnectingStorage, res.Err)
		}
		return res.Val.(*DB), nil
	}
}

// Close closes the pool if it was ever created. An initialization still in
// flight fails with [ErrPoolClosed] and closes its own pool. A later Get
// creates a new one.
func (p *PoolManager) Close() error {
	p.generation.Add(1)
	db := p.db.Swap(nil)
	if db == nil {
		return nil
	}
	return db.Close()
}

func openAndMigrate(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "openAndMigrate").Msg("failed to apply schema migrations")
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
