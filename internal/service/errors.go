package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidEnvironment    = errors.New("invalid environment")
	ErrProviderCheckDisabled = errors.New("identity provider check is not configured")
	ErrIssuerMismatch        = errors.New("identity provider issuer does not match the configured domain")
)
