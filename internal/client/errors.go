// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrMissingCommand = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage wraps every command-line mistake the user can fix by
	// changing arguments.
	ErrUsage = errors.New("usage error")
)
