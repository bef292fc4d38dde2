// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line. args must not include the
// program name.
//
// Flags:
//
//	-a, --address           HTTP server address in format [host]:[port]
//	-d, --database-dsn      database DSN
//	    --max-conns         maximum number of open database connections
//	    --connect-timeout   timeout of the first connect-and-migrate sequence
//	    --request-timeout   request timeout (e.g., "30s", "1m")
//	    --credential-scheme "bcrypt" or "plain"
//	    --log-level         zerolog level name
//	-c, --config            JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	flagSet := pflag.NewFlagSet("todo-server", pflag.ContinueOnError)
	flagSet.VarP(&serverAddress, "address", "a", "Net address host:port")
	flagSet.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "Database DSN")
	flagSet.IntVar(&cfg.Storage.DB.MaxConns, "max-conns", 0, "Maximum number of open database connections")
	flagSet.DurationVar(&cfg.Storage.DB.ConnectTimeout, "connect-timeout", 0, "Database connect timeout (e.g., 10s)")
	flagSet.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flagSet.StringVar(&cfg.App.CredentialScheme, "credential-scheme", "", "Credential scheme: bcrypt or plain")
	flagSet.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flagSet.StringVarP(&cfg.FilePath, "config", "c", "", "JSON or YAML config file path")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
