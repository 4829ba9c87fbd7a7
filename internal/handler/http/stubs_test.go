package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
	"github.com/MKhiriev/coffeeshop-env/models"
)

// stubEnvironmentService implements service.EnvironmentService for testing.
type stubEnvironmentService struct {
	env       models.Environment
	verifyErr error
}

func (s *stubEnvironmentService) GetEnvironment(_ context.Context) models.Environment {
	return s.env
}

func (s *stubEnvironmentService) VerifyProvider(_ context.Context) error {
	return s.verifyErr
}

// stubAppInfoService implements service.AppInfoService for testing.
type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *stubAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(s.version, "2026-10-01T12:00:00Z", "")
}

func testEnvironment() models.Environment {
	return models.Environment{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: models.Auth0{
			URL:         "fsnd-learning.eu.auth0.com",
			Audience:    "coffeeshop",
			ClientID:    "WRRFhnuwWodnMPooXCZz0eIFQ9Tovx6w",
			CallbackURL: "http://localhost:8100/login-results",
		},
	}
}

// newTestHandler builds a Handler over stub services with a nop logger.
func newTestHandler(t *testing.T, verifyErr error) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		EnvironmentService: &stubEnvironmentService{env: testEnvironment(), verifyErr: verifyErr},
		AppInfoService:     &stubAppInfoService{version: "test-version"},
	}, logger.Nop())
}
