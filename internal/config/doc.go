// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the todo server and client.
//
// Configuration is assembled from several sources. For every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or YAML config file
//  4. Defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
