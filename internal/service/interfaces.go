package service

import (
	"context"

	"github.com/MKhiriev/coffeeshop-env/models"
)

// EnvironmentService hands out the frontend environment record and checks
// it against the identity provider.
type EnvironmentService interface {
	// GetEnvironment returns a copy of the record.
	GetEnvironment(ctx context.Context) models.Environment

	// VerifyProvider confirms that the configured identity-provider domain
	// announces itself as the expected issuer.
	VerifyProvider(ctx context.Context) error
}

// AppInfoService exposes information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
