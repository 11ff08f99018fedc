// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/store"
)

// healthWorker pings the database on a fixed interval and reports the
// outcome to a HealthReporter. The first probe runs immediately.
type healthWorker struct {
	checker  store.HealthChecker
	reporter HealthReporter
	interval time.Duration

	logger *logger.Logger
}

func NewHealthWorker(checker store.HealthChecker, reporter HealthReporter, cfg config.Workers, logger *logger.Logger) Worker {
	interval := cfg.HealthCheckInterval
	if interval <= 0 {
		interval = config.DefaultHealthCheckInterval
	}

	return &healthWorker{
		checker:  checker,
		reporter: reporter,
		interval: interval,
		logger:   logger,
	}
}

func (w *healthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("storage health worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	healthy := w.probe(ctx, true)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("storage health worker stopped")
			return
		case <-ticker.C:
			healthy = w.probe(ctx, healthy)
		}
	}
}

// probe runs one check bounded by the interval. Only changes of state are
// logged above debug level.
func (w *healthWorker) probe(ctx context.Context, wasHealthy bool) bool {
	probeCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.checker.HealthCheck(probeCtx)
	healthy := err == nil
	w.reporter.SetServing(healthy)

	switch {
	case !healthy && wasHealthy:
		w.logger.Err(err).Msg("storage became unreachable")
	case healthy && !wasHealthy:
		w.logger.Info().Msg("storage is reachable again")
	default:
		w.logger.Debug().Bool("healthy", healthy).Msg("storage probe")
	}

	return healthy
}
