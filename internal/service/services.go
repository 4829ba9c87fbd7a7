package service

import (
	"fmt"

	"github.com/MKhiriev/coffeeshop-env/internal/adapter"
	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/models"
)

type Services struct {
	EnvironmentService EnvironmentService
	AppInfoService     AppInfoService
}

// NewServices wires all services from the merged configuration. provider may
// be nil when the identity-provider check is not needed.
func NewServices(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, provider adapter.IdentityProviderAdapter, logger *logger.Logger) (*Services, error) {
	environmentService, err := NewEnvironmentService(cfg.Environment(), provider, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating environment service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		EnvironmentService: environmentService,
		AppInfoService:     appInfoService,
	}, nil
}
