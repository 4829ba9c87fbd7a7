// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/coffeeshop-env/models"
	"github.com/asaskevich/govalidator"
)

// Field name constants used to restrict validation to a subset of the
// environment record. Values match the JSON names of the record.
const (
	// FieldAPIServerURL targets the backend API base URL.
	FieldAPIServerURL = "apiServerUrl"

	// FieldAuth0URL targets the identity-provider domain.
	FieldAuth0URL = "auth0.url"

	// FieldAudience targets the access-token audience.
	FieldAudience = "auth0.audience"

	// FieldClientID targets the public client identifier.
	FieldClientID = "auth0.clientId"

	// FieldCallbackURL targets the post-login redirect URL.
	FieldCallbackURL = "auth0.callbackURL"
)

var allEnvironmentFields = []string{
	FieldAPIServerURL,
	FieldAuth0URL,
	FieldAudience,
	FieldClientID,
	FieldCallbackURL,
}

// EnvironmentValidator implements the Validator interface for
// [models.Environment] and [models.Auth0].
//
// Unlike a fail-fast validator it checks every requested field and returns
// all violations joined together, so a broken configuration is reported in
// one pass.
type EnvironmentValidator struct {
}

// NewEnvironmentValidator constructs a new EnvironmentValidator
// and returns it as the Validator interface.
func NewEnvironmentValidator() Validator {
	return &EnvironmentValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms are accepted.
//
// Supported types:
//   - models.Environment / *models.Environment
//   - models.Auth0 / *models.Auth0 (only the auth0.* fields apply)
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *EnvironmentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Environment:
		return v.validateEnvironment(ctx, value, fields...)
	case *models.Environment:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEnvironment(ctx, *value, fields...)

	case models.Auth0:
		return v.validateAuth0(ctx, value, fields...)
	case *models.Auth0:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAuth0(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEnvironment validates the full record. When no fields are given
// every field is checked.
func (v *EnvironmentValidator) validateEnvironment(ctx context.Context, env models.Environment, fields ...string) error {
	if len(fields) == 0 {
		fields = allEnvironmentFields
	}

	var errs []error
	var auth0Fields []string
	for _, f := range fields {
		switch f {
		case FieldAPIServerURL:
			if !isHTTPURL(env.APIServerURL) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidAPIServerURL, env.APIServerURL))
			}
		case FieldAuth0URL, FieldAudience, FieldClientID, FieldCallbackURL:
			auth0Fields = append(auth0Fields, f)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if len(auth0Fields) > 0 {
		if err := v.validateAuth0(ctx, env.Auth0, auth0Fields...); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// validateAuth0 validates the identity-provider parameters. When no fields
// are given every auth0.* field is checked.
func (v *EnvironmentValidator) validateAuth0(_ context.Context, auth0 models.Auth0, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuth0URL, FieldAudience, FieldClientID, FieldCallbackURL}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldAuth0URL:
			if !IsHostname(auth0.URL) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidAuth0Domain, auth0.URL))
			}
		case FieldAudience:
			if strings.TrimSpace(auth0.Audience) == "" {
				errs = append(errs, ErrEmptyAudience)
			}
		case FieldClientID:
			if strings.TrimSpace(auth0.ClientID) == "" {
				errs = append(errs, ErrEmptyClientID)
			}
		case FieldCallbackURL:
			if !isHTTPURL(auth0.CallbackURL) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCallbackURL, auth0.CallbackURL))
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

// IsHostname reports whether s is a bare DNS hostname: no scheme, port,
// path or whitespace, and not an IP address. Every label must follow
// RFC 1123: letters, digits and inner hyphens only.
func IsHostname(s string) bool {
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}
	if !govalidator.IsDNSName(s) {
		return false
	}

	for _, label := range strings.Split(s, ".") {
		if !isHostnameLabel(label) {
			return false
		}
	}
	return true
}

func isHostnameLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	return !strings.Contains(label, "_")
}

// isHTTPURL reports whether s parses as an absolute URL with an http or https
// scheme and a non-empty host.
func isHTTPURL(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != "" && u.Hostname() != ""
}
