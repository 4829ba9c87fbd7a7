// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/utils"
	"github.com/MKhiriev/coffeeshop-env/models"
)

const discoveryPath = "/.well-known/openid-configuration"

type httpIdentityProviderAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPIdentityProviderAdapter constructs an HTTP implementation of
// [IdentityProviderAdapter] for the provider domain in auth0Cfg.URL.
//
// Requests go to "https://<domain>" unless adapterCfg.DiscoveryBaseURL
// overrides the base URL. The request timeout is adapterCfg.RequestTimeout.
//
// Returns an error if the resolved base URL is empty or cannot be parsed.
func NewHTTPIdentityProviderAdapter(auth0Cfg config.Auth0, adapterCfg config.Adapter, logger *logger.Logger) (IdentityProviderAdapter, error) {
	rawBaseURL := adapterCfg.DiscoveryBaseURL
	if rawBaseURL == "" {
		rawBaseURL = auth0Cfg.URL
	}

	baseURL, err := normalizeBaseURL(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpIdentityProviderAdapter{client: client, logger: logger}, nil
}

// normalizeBaseURL turns a bare host into an https URL and strips trailing
// slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Discover implements [IdentityProviderAdapter]. It GETs
// /.well-known/openid-configuration and decodes the document. A document
// without an issuer is rejected with [ErrInvalidDiscoveryDocument].
func (h *httpIdentityProviderAdapter) Discover(ctx context.Context) (models.OIDCDiscovery, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(discoveryPath)
	if err != nil {
		return models.OIDCDiscovery{}, fmt.Errorf("%w: discovery request: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OIDCDiscovery{}, err
	}

	var doc models.OIDCDiscovery
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.OIDCDiscovery{}, fmt.Errorf("%w: %w", ErrInvalidDiscoveryDocument, err)
	}
	if doc.Issuer == "" {
		return models.OIDCDiscovery{}, fmt.Errorf("%w: missing issuer", ErrInvalidDiscoveryDocument)
	}

	h.logger.Debug().
		Str("issuer", doc.Issuer).
		Str("jwks_uri", doc.JWKSURI).
		Msg("discovery document received")

	return doc, nil
}
