// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// shutdownTimeout bounds the wait for in-flight requests after a signal.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	listen     func(network, address string) (net.Listener, error)
	closers    []func() error
	logger     *logger.Logger
}

// Option customises a server returned by [NewServer].
type Option func(*server)

// WithCloser registers fn to run after the HTTP server has stopped.
// Closers run in registration order.
func WithCloser(fn func() error) Option {
	return func(s *server) {
		s.closers = append(s.closers, fn)
	}
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		listen:     net.Listen,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.server.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
		if err != nil {
			s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		err = errors.Join(err, shutdownErr)
	}

	if err == nil {
		s.logger.Info().Msg("server shutdown gracefully")
	}
	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.httpServer.shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down HTTP server: %w", err))
	}

	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
