// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the todo server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown, after which registered resources such as the database pool are
// released.
package server
