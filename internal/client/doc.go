// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the todo server.
//
// Each subcommand maps to one server endpoint through an
// adapter.ServerAdapter and prints the result to the configured writer.
package client
