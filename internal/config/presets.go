// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Build targets.
const (
	TargetDevelopment = "development"
	TargetProduction  = "production"
)

// Output formats.
const (
	FormatJSON       = "json"
	FormatTypeScript = "ts"
	FormatYAML       = "yaml"
)

const (
	defaultAuth0Domain   = "fsnd-learning.eu.auth0.com"
	defaultAuth0Audience = "coffeeshop"
	defaultAuth0ClientID = "WRRFhnuwWodnMPooXCZz0eIFQ9Tovx6w"

	defaultServerAddress  = "localhost:8081"
	defaultServerTimeout  = 10 * time.Second
	defaultAdapterTimeout = 5 * time.Second
)

// Preset returns the defaults of the given build target. The two targets
// share the identity-provider registration and differ only in scheme and
// port of the URLs.
//
// A fresh value is built on every call.
func Preset(target string) (*StructuredConfig, error) {
	var apiServerURL, callbackURL string

	switch target {
	case TargetDevelopment:
		apiServerURL = "http://127.0.0.1:5000"
		callbackURL = "http://localhost:8100/login-results"
	case TargetProduction:
		apiServerURL = "https://127.0.0.1:5443"
		callbackURL = "https://localhost:8443/login-results"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	return &StructuredConfig{
		App: App{
			Target:       target,
			APIServerURL: apiServerURL,
		},
		Auth0: Auth0{
			URL:         defaultAuth0Domain,
			Audience:    defaultAuth0Audience,
			ClientID:    defaultAuth0ClientID,
			CallbackURL: callbackURL,
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterTimeout,
		},
		Output: Output{
			Format: FormatJSON,
		},
	}, nil
}
