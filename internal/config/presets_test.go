// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset_Development(t *testing.T) {
	cfg, err := Preset(TargetDevelopment)
	require.NoError(t, err)

	env := cfg.Environment()
	assert.False(t, env.Production)
	assert.Equal(t, "http://127.0.0.1:5000", env.APIServerURL)
	assert.Equal(t, "fsnd-learning.eu.auth0.com", env.Auth0.URL)
	assert.Equal(t, "coffeeshop", env.Auth0.Audience)
	assert.Equal(t, "WRRFhnuwWodnMPooXCZz0eIFQ9Tovx6w", env.Auth0.ClientID)
	assert.Equal(t, "http://localhost:8100/login-results", env.Auth0.CallbackURL)
}

func TestPreset_Production(t *testing.T) {
	cfg, err := Preset(TargetProduction)
	require.NoError(t, err)

	env := cfg.Environment()
	assert.True(t, env.Production)
	assert.Equal(t, "https://127.0.0.1:5443", env.APIServerURL)
	assert.Equal(t, "https://localhost:8443/login-results", env.Auth0.CallbackURL)
}

// TestPreset_TargetsDifferOnlyInSchemeAndPort verifies that both targets share
// hosts, paths and provider registration.
func TestPreset_TargetsDifferOnlyInSchemeAndPort(t *testing.T) {
	dev, err := Preset(TargetDevelopment)
	require.NoError(t, err)
	prod, err := Preset(TargetProduction)
	require.NoError(t, err)

	assert.Equal(t, dev.Auth0.URL, prod.Auth0.URL)
	assert.Equal(t, dev.Auth0.Audience, prod.Auth0.Audience)
	assert.Equal(t, dev.Auth0.ClientID, prod.Auth0.ClientID)

	for _, pair := range [][2]string{
		{dev.App.APIServerURL, prod.App.APIServerURL},
		{dev.Auth0.CallbackURL, prod.Auth0.CallbackURL},
	} {
		d, err := url.Parse(pair[0])
		require.NoError(t, err)
		p, err := url.Parse(pair[1])
		require.NoError(t, err)

		assert.Equal(t, "http", d.Scheme)
		assert.Equal(t, "https", p.Scheme)
		assert.Equal(t, d.Hostname(), p.Hostname())
		assert.Equal(t, d.Path, p.Path)
		assert.NotEqual(t, d.Port(), p.Port())
	}
}

func TestPreset_Valid(t *testing.T) {
	for _, target := range []string{TargetDevelopment, TargetProduction} {
		t.Run(target, func(t *testing.T) {
			cfg, err := Preset(target)
			require.NoError(t, err)
			assert.NoError(t, cfg.validate())
		})
	}
}

func TestPreset_UnknownTarget(t *testing.T) {
	cfg, err := Preset("staging")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

// TestPreset_FreshValue verifies that callers cannot corrupt later presets.
func TestPreset_FreshValue(t *testing.T) {
	first, err := Preset(TargetDevelopment)
	require.NoError(t, err)
	first.Auth0.ClientID = "mutated"

	second, err := Preset(TargetDevelopment)
	require.NoError(t, err)
	assert.Equal(t, defaultAuth0ClientID, second.Auth0.ClientID)
}
