// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/spf13/pflag"
)

func (a *App) register(ctx context.Context, args []string) error {
	credentials, err := parseCredentials("register", args)
	if err != nil {
		return err
	}

	if err = a.adapter.Register(ctx, credentials); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s\n", credentials.Username)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	credentials, err := parseCredentials("login", args)
	if err != nil {
		return err
	}

	if err = a.adapter.Login(ctx, credentials); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", credentials.Username)
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	flagSet := newFlagSet("add")
	username := usernameFlag(flagSet)
	if err := parseOwned(flagSet, args, username); err != nil {
		return err
	}

	content := strings.Join(flagSet.Args(), " ")
	todo, err := a.adapter.SaveTodo(ctx, *username, content)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "added #%d\n", todo.ID)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	flagSet := newFlagSet("list")
	username := usernameFlag(flagSet)
	if err := parseOwned(flagSet, args, username); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, flagSet.Arg(0))
	}

	todos, err := a.adapter.ListTodos(ctx, *username)
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		fmt.Fprintln(a.out, "no todos")
		return nil
	}
	for _, todo := range todos {
		fmt.Fprintln(a.out, formatTodo(todo))
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	flagSet := newFlagSet("delete")
	username := usernameFlag(flagSet)
	if err := parseOwned(flagSet, args, username); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("%w: delete takes exactly one todo id", ErrUsage)
	}

	todoID, err := strconv.ParseInt(flagSet.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid todo id %q", ErrUsage, flagSet.Arg(0))
	}

	if err = a.adapter.DeleteTodo(ctx, *username, todoID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted #%d\n", todoID)
	return nil
}

func (a *App) ping(ctx context.Context, _ []string) error {
	if err := a.adapter.Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func parseCredentials(name string, args []string) (models.Credentials, error) {
	var credentials models.Credentials

	flagSet := newFlagSet(name)
	flagSet.StringVarP(&credentials.Username, "username", "u", "", "Username")
	flagSet.StringVarP(&credentials.Password, "password", "p", "", "Password")
	if err := parse(flagSet, args); err != nil {
		return models.Credentials{}, err
	}

	return credentials, nil
}

func usernameFlag(flagSet *pflag.FlagSet) *string {
	return flagSet.StringP("username", "u", "", "Owner of the todos")
}

func parse(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

// parseOwned is parse for commands acting on one user's todos.
func parseOwned(flagSet *pflag.FlagSet, args []string, username *string) error {
	if err := parse(flagSet, args); err != nil {
		return err
	}
	if strings.TrimSpace(*username) == "" {
		return fmt.Errorf("%w: --username is required", ErrUsage)
	}
	return nil
}

func formatTodo(todo models.Todo) string {
	created := ""
	if !todo.CreatedAt.IsZero() {
		created = todo.CreatedAt.Local().Format(time.DateTime) + "  "
	}
	return fmt.Sprintf("#%-6d %s%s", todo.ID, created, todo.Content)
}
