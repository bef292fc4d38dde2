// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {usage: "register -u <username> -p <password>", run: (*App).register},
	"login":    {usage: "login -u <username> -p <password>", run: (*App).login},
	"add":      {usage: "add -u <username> <content...>", run: (*App).add},
	"list":     {usage: "list -u <username>", run: (*App).list},
	"delete":   {usage: "delete -u <username> <todo-id>", run: (*App).delete},
	"ping":     {usage: "ping", run: (*App).ping},
	"version":  {usage: "version", run: (*App).version},
}

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: serverAdapter, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(a, ctx, args[1:])
}

// PrintUsage writes the command summary to w.
func PrintUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Usage: todo-client [--server URL] [--log-level LEVEL] <command> [flags]\n\nCommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", commands[name].usage)
	}
	io.WriteString(w, b.String())
}
