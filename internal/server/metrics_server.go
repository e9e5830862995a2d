package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/metrics"
)

// StartMetricsServer serves /metrics until ctx is canceled.
func StartMetricsServer(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting metrics server", "addr", cfg.Metrics.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
