// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/coffeeshop-env/internal/logger"
	"github.com/MKhiriev/coffeeshop-env/internal/service"
)

// ProviderCheckWorker repeats the identity-provider check on a fixed interval
// and logs failures. The served environment record is never changed.
type ProviderCheckWorker struct {
	service  service.EnvironmentService
	interval time.Duration

	logger *logger.Logger
}

func NewProviderCheckWorker(svc service.EnvironmentService, interval time.Duration, logger *logger.Logger) *ProviderCheckWorker {
	return &ProviderCheckWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
	}
}

func (w *ProviderCheckWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting provider check worker")
	go w.loop(ctx)
}

func (w *ProviderCheckWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("provider check worker stopped")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *ProviderCheckWorker) check(ctx context.Context) {
	if err := w.service.VerifyProvider(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("periodic identity provider check failed")
		return
	}
	w.logger.Debug().Msg("periodic identity provider check passed")
}
