// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/coffeeshop-env/internal/adapter"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/validators"
	"github.com/MKhiriev/coffeeshop-env/models"
)

type environmentService struct {
	env models.Environment

	provider adapter.IdentityProviderAdapter

	logger *logger.Logger
}

// NewEnvironmentService validates env and returns a service serving it.
// provider may be nil, in which case VerifyProvider reports
// [ErrProviderCheckDisabled].
func NewEnvironmentService(env models.Environment, provider adapter.IdentityProviderAdapter, logger *logger.Logger) (EnvironmentService, error) {
	if err := validators.NewEnvironmentValidator().Validate(context.Background(), env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvironment, err)
	}

	return &environmentService{
		env:      env,
		provider: provider,
		logger:   logger,
	}, nil
}

func (s *environmentService) GetEnvironment(ctx context.Context) models.Environment {
	return s.env
}

func (s *environmentService) VerifyProvider(ctx context.Context) error {
	if s.provider == nil {
		return ErrProviderCheckDisabled
	}

	doc, err := s.provider.Discover(ctx)
	if err != nil {
		return fmt.Errorf("error discovering identity provider %s: %w", s.env.Auth0.URL, err)
	}

	want := s.env.Auth0.IssuerURL()
	if strings.TrimRight(doc.Issuer, "/") != strings.TrimRight(want, "/") {
		return fmt.Errorf("%w: want %s, got %s", ErrIssuerMismatch, want, doc.Issuer)
	}

	s.logger.Info().
		Str("issuer", doc.Issuer).
		Str("audience", s.env.Auth0.Audience).
		Msg("identity provider verified")

	return nil
}
