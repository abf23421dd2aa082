// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds the client's local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the development stub server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the remote
	// Calmora service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration.
type App struct {
	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its logs. Relative paths are
	// resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the client's storage backends.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds local database settings.
type DB struct {
	// DSN is the SQLite file that keeps the session cookie jar between
	// runs. ":memory:" keeps the session for the lifetime of the process only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network settings of the development stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote service. A missing scheme
	// defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single remote call. Zero disables the timeout:
	// calls run until they complete or fail at the transport.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults used when no source provides a value.
const (
	DefaultAdapterAddress = "http://localhost:5000"
	DefaultServerAddress  = "localhost:5000"
	DefaultDSN            = "calmora.db"
	DefaultLogLevel       = "debug"
	DefaultLogFile        = "logs"
	DefaultServerTimeout  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  DefaultLogFile,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{HTTPAddress: DefaultAdapterAddress},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
