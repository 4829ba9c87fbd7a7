// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffeeshop-env/internal/validators"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Every violated group is reported;
// the result wraps the matching sentinel errors of this package.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.Target != TargetDevelopment && cfg.App.Target != TargetProduction {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTarget, cfg.App.Target))
	}

	validator := validators.NewEnvironmentValidator()
	if err := validator.Validate(context.Background(), cfg.Environment()); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidEnvironmentConfigs, err))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.CheckInterval < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	switch cfg.Output.Format {
	case FormatJSON, FormatTypeScript, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format))
	}

	return errors.Join(errs...)
}
