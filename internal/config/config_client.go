// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// defaultClientTimeout is used when neither ADAPTER_REQUEST_TIMEOUT nor
// -request-timeout is given.
const defaultClientTimeout = 10 * time.Second

// ClientAdapter holds the settings of the HTTP client talking to the
// accounts server.
type ClientAdapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the CLI configuration.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Args holds the positional arguments left after flag parsing: the
	// command name followed by its own arguments.
	Args []string
}

// GetClientConfig reads ADAPTER_* environment variables, then applies the
// global CLI flags found in args (flags override env). Parsing stops at the
// first positional argument, which is returned in [ClientConfig.Args].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var address NetAddress
	var requestTimeout time.Duration
	fs.Var(&address, "a", "Server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if addr := address.String(); addr != "" {
		cfg.Adapter.HTTPAddress = addr
	}
	if requestTimeout != 0 {
		cfg.Adapter.RequestTimeout = requestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	cfg.Args = fs.Args()

	return cfg, cfg.validate()
}
