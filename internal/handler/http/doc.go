// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the todo server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, panic recovery, request timeouts and
// response compression are applied here before requests are delegated to the
// service layer. Service error kinds are mapped to status codes in one place.
package http
