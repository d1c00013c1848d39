// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultHashSuffix is the application constant appended to every password
// before hashing. Changing it invalidates every stored digest.
const DefaultHashSuffix = "MediaMunch"

// StructuredConfig is the top-level server configuration.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds hashing, versioning and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the document store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// set via CONFIG or -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashSuffix is the constant appended to password, username and
	// creation timestamp before SHA-256 hashing.
	// Env: APP_HASH_SUFFIX
	HashSuffix string `env:"HASH_SUFFIX"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the users collection.
type DB struct {
	// DSN selects the backend: "postgres://..." / "postgresql://..." for
	// PostgreSQL, anything else ("file:users.db", "users.db", ":memory:")
	// for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool. Zero keeps the driver default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request, including its store calls.
	// Zero disables the bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LegacyStatusCodes makes every error response use 200 OK, as the first
	// version of the API did.
	// Env: SERVER_LEGACY_STATUS_CODES
	LegacyStatusCodes bool `env:"LEGACY_STATUS_CODES"`
}

// GetStructuredConfig loads environment variables, command-line flags and
// the optional JSON file, merges them (later sources override non-zero
// fields), applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.HashSuffix == "" {
		cfg.App.HashSuffix = DefaultHashSuffix
	}
}
