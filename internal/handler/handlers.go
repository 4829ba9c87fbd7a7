package handler

import (
	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/handler/http"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
