package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/bloom/internal/app"
	"github.com/oggyb/bloom/internal/cache"
	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/db"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/scheduler"
	"github.com/oggyb/bloom/internal/server"
	"github.com/oggyb/bloom/internal/service/bloom"
	"github.com/oggyb/bloom/internal/service/proximity"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bloom: %v\n", err)
		os.Exit(1)
	}
}

// run wires and serves everything; it returns instead of exiting so deferred
// cleanup always runs.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	var m *metrics.Registry
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	appCtx := app.New(cfg, database, redisCache, log, app.WithMetrics(m))

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, log); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	// location index sweep
	g.Go(func() error {
		appCtx.Index.Run(gctx)
		return nil
	})

	if cfg.Scheduler.Enabled {
		schedOpts := []scheduler.Option{
			scheduler.WithClock(appCtx.Clock),
			scheduler.WithLogger(log),
			scheduler.WithMetrics(m),
		}

		perfect := scheduler.NewPerfectMatch(database, appCtx.Orchestrator, proximity.GlobalMode(cfg),
			append(schedOpts,
				scheduler.WithInterval(cfg.Scheduler.Interval),
				scheduler.WithConcurrency(cfg.Scheduler.Concurrency),
			)...,
		)
		purger := scheduler.NewSignalPurger(database,
			append(schedOpts, scheduler.WithInterval(cfg.Scheduler.PurgeInterval))...,
		)

		g.Go(func() error {
			perfect.Run(gctx)
			return nil
		})
		g.Go(func() error {
			purger.Run(gctx)
			return nil
		})
	}

	if m != nil {
		g.Go(func() error {
			return server.StartMetricsServer(gctx, cfg, log, m)
		})
	}

	g.Go(func() error {
		return server.StartGRPCServer(gctx, cfg, log, m, bloom.NewRegistrar(appCtx))
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "err", err)
		return err
	}
	log.Info("shutdown complete")
	return nil
}
