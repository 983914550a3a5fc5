// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hrm-client application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version
	// string reported in logs.
	App App `envPrefix:"APP_"`

	// Backend holds the Atomwalk HRM backend endpoint settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds the device-local settings database configuration.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs (activity summary
	// refresh after login).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Included in every log record.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BiometricCmd is the external fingerprint verification command, e.g.
	// "fprintd-verify" on Linux. Empty selects the platform default; the
	// fingerprint unlock is offered only when the command resolves.
	// Env: APP_BIOMETRIC_CMD
	BiometricCmd string `env:"BIOMETRIC_CMD"`
}

// Backend holds endpoint settings for the Atomwalk HRM REST API.
type Backend struct {
	// BaseURL is the API root, e.g. "https://www.atomwalk.com/hrm/api".
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// UserDetailURL is the public endpoint that resolves a bare employee
	// ID to a login username. It lives outside the authenticated API root.
	// Env: BACKEND_USER_DETAIL_URL
	UserDetailURL string `env:"USER_DETAIL_URL"`

	// RequestTimeout is the per-request deadline for outbound calls
	// (e.g. "15s").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the device-local store.
type Storage struct {
	// DB holds the local settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite settings database.
type DB struct {
	// DSN is the SQLite file path used for the device-local settings
	// store (credentials, PIN, preferences, cached profile).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the activity summary is
	// re-fetched while the user is logged in.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file is loaded into the environment
//     first, without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
