package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	ErrUnreachable              = errors.New("identity provider unreachable")
	ErrUnexpectedStatus         = errors.New("unexpected status")
	ErrInvalidDiscoveryDocument = errors.New("invalid discovery document")
)
