// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// identity provider referenced by the environment record.
//
// The primary abstraction is [IdentityProviderAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPIdentityProviderAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/coffeeshop-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_adapter_mock.go -package=mock

// IdentityProviderAdapter reads public metadata of the identity provider.
type IdentityProviderAdapter interface {
	// Discover fetches the provider's OpenID configuration document.
	// Returns an error wrapping one of the sentinel values of this package
	// if the request fails, the provider answers with a non-2xx status, or
	// the document cannot be decoded.
	Discover(ctx context.Context) (models.OIDCDiscovery, error)
}
