package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidTarget indicates an unknown build target.
	ErrInvalidTarget = errors.New("invalid build target")
	// ErrInvalidEnvironmentConfigs indicates that the frontend record
	// violates its invariants (for example, a malformed URL or empty client id).
	ErrInvalidEnvironmentConfigs = errors.New("invalid environment configuration")
	// ErrInvalidServerConfigs indicates invalid environment server settings
	// (for example, missing address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid discovery client settings
	// (for example, zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidOutputConfigs indicates invalid generator output settings.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
