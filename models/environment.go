// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Environment is the configuration record consumed by the Coffee Shop
// frontend at startup. The JSON field names form the public contract read by
// the frontend build and must not change.
//
// An Environment is built once and treated as immutable afterwards: it
// contains only value fields, so every assignment hands out an independent
// copy.
type Environment struct {
	// Production distinguishes production builds from development builds.
	Production bool `json:"production" yaml:"production"`

	// APIServerURL is the base URL of the backend API
	// (e.g. "http://127.0.0.1:5000").
	APIServerURL string `json:"apiServerUrl" yaml:"apiServerUrl"`

	// Auth0 holds the identity-provider parameters.
	Auth0 Auth0 `json:"auth0" yaml:"auth0"`
}

// Auth0 holds the parameters the frontend needs to run the login flow
// against an Auth0-style OIDC identity provider.
type Auth0 struct {
	// URL is the identity-provider domain, a bare hostname without scheme
	// (e.g. "fsnd-learning.eu.auth0.com").
	URL string `json:"url" yaml:"url"`

	// Audience is the API identifier expected in issued access tokens.
	Audience string `json:"audience" yaml:"audience"`

	// ClientID is the public client identifier registered with the provider.
	ClientID string `json:"clientId" yaml:"clientId"`

	// CallbackURL is where the provider redirects after authentication.
	CallbackURL string `json:"callbackURL" yaml:"callbackURL"`
}

// IssuerURL returns the issuer identifier the provider is expected to
// announce for the configured domain.
func (a Auth0) IssuerURL() string {
	return "https://" + a.URL + "/"
}
