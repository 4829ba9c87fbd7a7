package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAPIServerURL = errors.New("apiServerUrl must be an absolute http(s) URL")
	ErrInvalidAuth0Domain  = errors.New("auth0.url must be a valid hostname")
	ErrEmptyAudience       = errors.New("auth0.audience is required")
	ErrEmptyClientID       = errors.New("auth0.clientId is required")
	ErrInvalidCallbackURL  = errors.New("auth0.callbackURL must be an absolute http(s) URL")
)
