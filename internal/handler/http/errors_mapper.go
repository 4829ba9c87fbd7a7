package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/coffeeshop-env/internal/adapter"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrProviderCheckDisabled: http.StatusNotFound,
	service.ErrIssuerMismatch:        http.StatusBadGateway,

	adapter.ErrBadRequest:               http.StatusBadGateway,
	adapter.ErrUnauthorized:             http.StatusBadGateway,
	adapter.ErrForbidden:                http.StatusBadGateway,
	adapter.ErrNotFound:                 http.StatusBadGateway,
	adapter.ErrBadGateway:               http.StatusBadGateway,
	adapter.ErrInternalServerError:      http.StatusBadGateway,
	adapter.ErrInvalidDiscoveryDocument: http.StatusBadGateway,
	adapter.ErrUnreachable:              http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:         http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
