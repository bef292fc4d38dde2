// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnexpectedStatus is returned for statuses the server never sends
	// for the called endpoint.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrInvalidAddress = errors.New("invalid server address")
)
