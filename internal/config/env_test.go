// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TARGET":         "production",
		"APP_VERSION":        "1.0.0",
		"APP_API_SERVER_URL": "https://api.example.com",

		"AUTH0_URL":          "tenant.eu.auth0.com",
		"AUTH0_AUDIENCE":     "coffeeshop",
		"AUTH0_CLIENT_ID":    "client-123",
		"AUTH0_CALLBACK_URL": "https://app.example.com/login-results",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_REQUEST_TIMEOUT":    "2s",
		"ADAPTER_CHECK_PROVIDER":     "true",
		"ADAPTER_CHECK_INTERVAL":     "5m",
		"ADAPTER_DISCOVERY_BASE_URL": "http://127.0.0.1:9999",

		"OUTPUT_PATH":   "/tmp/environment.json",
		"OUTPUT_FORMAT": "json",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, TargetProduction, cfg.App.Target)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "https://api.example.com", cfg.App.APIServerURL)

	assert.Equal(t, "tenant.eu.auth0.com", cfg.Auth0.URL)
	assert.Equal(t, "coffeeshop", cfg.Auth0.Audience)
	assert.Equal(t, "client-123", cfg.Auth0.ClientID)
	assert.Equal(t, "https://app.example.com/login-results", cfg.Auth0.CallbackURL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.CheckProvider)
	assert.Equal(t, 5*time.Minute, cfg.Adapter.CheckInterval)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Adapter.DiscoveryBaseURL)

	assert.Equal(t, "/tmp/environment.json", cfg.Output.Path)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"AUTH0_CLIENT_ID": "client-123",
		"SERVER_ADDRESS":  "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Auth0 partially filled
	assert.Equal(t, "client-123", cfg.Auth0.ClientID)
	assert.Empty(t, cfg.Auth0.URL)
	assert.Empty(t, cfg.Auth0.Audience)

	// Server partially filled
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_CHECK_PROVIDER": "maybe"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TARGET",
		"APP_VERSION",
		"APP_API_SERVER_URL",

		"AUTH0_URL",
		"AUTH0_AUDIENCE",
		"AUTH0_CLIENT_ID",
		"AUTH0_CALLBACK_URL",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_CHECK_PROVIDER",
		"ADAPTER_CHECK_INTERVAL",
		"ADAPTER_DISCOVERY_BASE_URL",

		"OUTPUT_PATH",
		"OUTPUT_FORMAT",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		_ = os.Unsetenv(k)
	}
}
