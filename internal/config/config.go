// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// panel and the bin server. It is populated by merging defaults, an optional
// .env file, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version, logging and the key
	// derivation cost.
	App App `envPrefix:"APP_"`

	// Storage holds the bin server database and the panel's local storage.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the bin server listener settings and request limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter selects and configures the remote bin backend used by the
	// panel.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// AI configures the text generation assistant of the panel.
	AI AI `envPrefix:"AI_"`

	// Workers holds background worker timing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment variables are
	// read. A missing file is not an error.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by the bin server /healthz endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the panel writes its logs; the terminal belongs to
	// the dashboard.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// KDFIterations is the PBKDF2 iteration count of the crypto envelope.
	// Values below the envelope minimum are raised to it.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB is the bin server database.
	DB DBConfig `envPrefix:"DB_"`

	// Local is the panel's key-value storage.
	Local LocalStorageConfig `envPrefix:"LOCAL_"`
}

// DBConfig holds connection settings for the bin server database.
type DBConfig struct {
	// DSN is a postgres:// URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the PostgreSQL pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// LocalStorageConfig names the panel's durable key-value store.
type LocalStorageConfig struct {
	// DSN is a SQLite file path, bolt://<path> or "memory".
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds network, timeout and limit settings of the bin server.
type Server struct {
	// HTTPAddress is the TCP address the bin server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodyBytes rejects larger bin bodies with 413.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size per client IP.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Adapter configures the remote bin backend. The HTTP backend wins when its
// address is set, then S3; with neither the panel runs without remote sync.
type Adapter struct {
	// HTTPAddress is the bin server base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// S3 configures an S3 or MinIO bucket as bin backend.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds object storage settings.
type S3 struct {
	Endpoint     string `env:"ENDPOINT"`
	Region       string `env:"REGION"`
	Bucket       string `env:"BUCKET"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	UsePathStyle bool   `env:"USE_PATH_STYLE"`
}

// AI configures the text generation API.
type AI struct {
	// APIKey enables the assistant; without it every request returns the
	// fallback text.
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the generation model name.
	// Env: AI_MODEL
	Model string `env:"MODEL"`
}

// Workers holds background worker settings.
type Workers struct {
	// DebounceWindow is the quiescence window before roster changes are
	// persisted.
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (after loading an optional .env file)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
