package app

import (
	"log/slog"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"

	"github.com/oggyb/bloom/internal/cache"
	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/geo"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/scorer"
	"github.com/oggyb/bloom/internal/service/proximity"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.) and the
// long-lived engine components built on top of them.
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Clock      clock.Clock
	Metrics    *metrics.Registry

	// Index is owned here: created at startup, swept by its Run loop.
	Index        *geo.Index
	Orchestrator *proximity.Orchestrator
	Matcher      *proximity.Matcher
}

type options struct {
	clock      clock.Clock
	metrics    *metrics.Registry
	scorer     proximity.Scorer
	pairScorer proximity.Scorer
}

type Option func(*options)

// WithClock replaces the wall clock, for tests.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithMetrics(m *metrics.Registry) Option {
	return func(o *options) { o.metrics = m }
}

// WithScorer replaces the HTTP scorer client for both batch and pairwise
// scoring.
func WithScorer(s proximity.Scorer) Option {
	return func(o *options) {
		o.scorer = s
		o.pairScorer = s
	}
}

// New creates a new AppContext and wires the signal engine.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, log *slog.Logger, opts ...Option) *AppContext {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	if log == nil {
		log = logger.L()
	}

	if o.scorer == nil {
		client := scorer.New(cfg.Scorer.BaseURL,
			scorer.WithTimeout(cfg.Scorer.Timeout),
			scorer.WithLogger(logger.Named(log, "scorer")),
			scorer.WithMetrics(o.metrics),
		)
		o.scorer = client
		o.pairScorer = client.WithCallTimeout(cfg.Scorer.PairTimeout)
	}

	index := geo.NewIndex(
		geo.WithClock(o.clock),
		geo.WithCellSize(cfg.Location.CellSizeDeg),
		geo.WithDebounce(cfg.Location.DebounceMeters),
		geo.WithStaleness(cfg.Location.Staleness),
		geo.WithEvictionTTL(cfg.Location.EvictionTTL),
		geo.WithSweepInterval(cfg.Location.SweepInterval),
		geo.WithLogger(logger.Named(log, "location_index")),
		geo.WithMetrics(o.metrics),
	)

	shared := []proximity.Option{
		proximity.WithClock(o.clock),
		proximity.WithLogger(log),
		proximity.WithMetrics(o.metrics),
		proximity.WithPairScorer(o.pairScorer),
		proximity.WithPairLocks(&proximity.PairLocks{}),
		proximity.WithConcurrency(cfg.Scorer.Concurrency),
	}
	if rdb != nil {
		shared = append(shared, proximity.WithSeenCache(rdb))
	}

	return &AppContext{
		Config:       cfg,
		DB:           db,
		RedisCache:   rdb,
		Logger:       log,
		Clock:        o.clock,
		Metrics:      o.metrics,
		Index:        index,
		Orchestrator: proximity.NewOrchestrator(db, index, o.scorer, shared...),
		Matcher:      proximity.NewMatcher(db, shared...),
	}
}
