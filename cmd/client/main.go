// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/client"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, args, err := client.ParseGlobalFlags(os.Args[1:])
	if err != nil || opts.Help {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		client.PrintUsage(os.Stderr)
		return 2
	}
	if len(args) > 0 && args[0] == "build-info" {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return 0
	}

	log := logger.NewClientLogger("todo-client", opts.LogLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if cfg, err = cfg.WithBaseURL(opts.Server); err != nil {
		log.Error().Err(err).Msg("invalid --server")
		return 2
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrMissingCommand) || errors.Is(err, client.ErrUnknownCommand) {
			client.PrintUsage(os.Stderr)
			return 2
		}
		return 1
	}

	return 0
}
