package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonBody = `{
	"app": {
		"target": "production",
		"version": "2.0.0",
		"api_server_url": "https://api.example.com"
	},
	"auth0": {
		"url": "tenant.eu.auth0.com",
		"audience": "coffeeshop",
		"client_id": "client-123",
		"callback_url": "https://app.example.com/login-results"
	},
	"server": {
		"http_address": "localhost:8080",
		"request_timeout": "30s"
	},
	"adapter": {
		"request_timeout": "2s",
		"check_provider": true,
		"check_interval": "10m",
		"discovery_base_url": "http://127.0.0.1:9999"
	},
	"output": {
		"path": "/tmp/environment.ts",
		"format": "ts"
	}
}`

const yamlBody = `
app:
  target: production
  version: 2.0.0
  api_server_url: https://api.example.com
auth0:
  url: tenant.eu.auth0.com
  audience: coffeeshop
  client_id: client-123
  callback_url: https://app.example.com/login-results
server:
  http_address: localhost:8080
  request_timeout: 30s
adapter:
  request_timeout: 2s
  check_provider: true
  check_interval: 10m
  discovery_base_url: http://127.0.0.1:9999
output:
  path: /tmp/environment.ts
  format: ts
`

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func assertFullFileConfig(t *testing.T, cfg *StructuredConfig) {
	t.Helper()
	require.NotNil(t, cfg)

	assert.Equal(t, TargetProduction, cfg.App.Target)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://api.example.com", cfg.App.APIServerURL)

	assert.Equal(t, "tenant.eu.auth0.com", cfg.Auth0.URL)
	assert.Equal(t, "coffeeshop", cfg.Auth0.Audience)
	assert.Equal(t, "client-123", cfg.Auth0.ClientID)
	assert.Equal(t, "https://app.example.com/login-results", cfg.Auth0.CallbackURL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.CheckProvider)
	assert.Equal(t, 10*time.Minute, cfg.Adapter.CheckInterval)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Adapter.DiscoveryBaseURL)

	assert.Equal(t, "/tmp/environment.ts", cfg.Output.Path)
	assert.Equal(t, FormatTypeScript, cfg.Output.Format)

	// the file never points at another file
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", jsonBody)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assertFullFileConfig(t, cfg)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml", "CONFIG.YAML"} {
		t.Run(name, func(t *testing.T) {
			p := writeConfigFile(t, name, yamlBody)

			cfg, err := parseFile(p)

			require.NoError(t, err)
			assertFullFileConfig(t, cfg)
		})
	}
}

func TestParseFile_PartialJSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"auth0": {"client_id": "only-client"}}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "only-client", cfg.Auth0.ClientID)
	assert.Empty(t, cfg.Auth0.URL)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestParseFile_FileNotFound(t *testing.T) {
	cfg, err := parseFile(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_MalformedJSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", "{not valid json")

	cfg, err := parseFile(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_MalformedYAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "app: [unterminated")

	cfg, err := parseFile(p)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestParseFile_InvalidDuration(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"server": {"request_timeout": "later"}}`)

	_, err := parseFile(p)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "null", input: `null`, want: 0},
		{name: "bad string", input: `"abc"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(b))
}

func TestDuration_UnmarshalYAML_Nanoseconds(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "server:\n  request_timeout: 1000000000\n")

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}
