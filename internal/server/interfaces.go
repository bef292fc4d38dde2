// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport server.
//
// RunServer blocks until a termination signal arrives or ctx is cancelled,
// then shuts down gracefully.
type Server interface {
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests, waits for in-flight ones and
	// releases resources registered via [WithCloser].
	Shutdown(ctx context.Context) error
}
