package workers

import (
	"context"

	"github.com/MKhiriev/coffeeshop-env/internal/config"
	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The provider check worker is
// added when the check is on and has a positive interval.
func NewWorkers(services *service.Services, cfg config.Adapter, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.CheckProvider && cfg.CheckInterval > 0 {
		w.workers = append(w.workers, NewProviderCheckWorker(services.EnvironmentService, cfg.CheckInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
