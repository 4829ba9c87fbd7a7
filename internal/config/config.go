// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/coffeeshop-env/models"
)

// StructuredConfig is the top-level configuration container. It aggregates
// the frontend environment record together with the settings of the tools
// that generate and serve it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the build target, the served version and the backend API
	// base URL.
	App App `envPrefix:"APP_"`

	// Auth0 holds the identity-provider parameters of the record.
	Auth0 Auth0 `envPrefix:"AUTH0_"`

	// Server holds listen address and timeout settings for the environment
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the identity-provider discovery client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Output holds generator output settings.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Target is the build target: "development" or "production".
	// It selects the preset and decides the production flag of the record.
	// Env: APP_TARGET
	Target string `env:"TARGET"`

	// Version is the version string served at /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// APIServerURL is the base URL of the backend API.
	// Env: APP_API_SERVER_URL
	APIServerURL string `env:"API_SERVER_URL"`
}

// Auth0 holds the identity-provider settings copied into the record.
type Auth0 struct {
	// URL is the provider domain, a bare hostname.
	// Env: AUTH0_URL
	URL string `env:"URL"`

	// Audience is the API audience expected in access tokens.
	// Env: AUTH0_AUDIENCE
	Audience string `env:"AUDIENCE"`

	// ClientID is the public client identifier.
	// Env: AUTH0_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// CallbackURL is the redirect target after login.
	// Env: AUTH0_CALLBACK_URL
	CallbackURL string `env:"CALLBACK_URL"`
}

// Server holds network and timeout settings for the environment server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8081").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds read/write of a single request and the graceful
	// shutdown (e.g. "10s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for the identity-provider discovery client.
type Adapter struct {
	// RequestTimeout is the timeout of one discovery request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CheckProvider enables the discovery check before output is written.
	// Env: ADAPTER_CHECK_PROVIDER
	CheckProvider bool `env:"CHECK_PROVIDER"`

	// CheckInterval makes the environment server repeat the check
	// periodically. Zero disables the periodic check.
	// Env: ADAPTER_CHECK_INTERVAL
	CheckInterval time.Duration `env:"CHECK_INTERVAL"`

	// DiscoveryBaseURL overrides "https://<auth0 domain>" as the base of the
	// discovery request. Empty means no override.
	// Env: ADAPTER_DISCOVERY_BASE_URL
	DiscoveryBaseURL string `env:"DISCOVERY_BASE_URL"`
}

// Output holds settings of the environment generator.
type Output struct {
	// Path is the file the record is written to; empty means stdout.
	// Env: OUTPUT_PATH
	Path string `env:"PATH"`

	// Format is "json", "ts" or "yaml".
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}

// Environment returns the frontend record described by cfg. The result is a
// value; mutating it does not affect cfg.
func (cfg *StructuredConfig) Environment() models.Environment {
	return models.Environment{
		Production:   cfg.App.Target == TargetProduction,
		APIServerURL: cfg.App.APIServerURL,
		Auth0: models.Auth0{
			URL:         cfg.Auth0.URL,
			Audience:    cfg.Auth0.Audience,
			ClientID:    cfg.Auth0.ClientID,
			CallbackURL: cfg.Auth0.CallbackURL,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args (without the program name)
//  3. Config file (path resolved from sources 1 and 2)
//
// The preset of the resolved build target then fills the remaining gaps.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
