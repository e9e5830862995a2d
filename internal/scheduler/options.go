package scheduler

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/oggyb/bloom/internal/metrics"
)

const (
	DefaultInterval      = time.Minute
	DefaultPurgeInterval = 5 * time.Minute
	DefaultConcurrency   = 8
)

type options struct {
	clock       clock.Clock
	log         *slog.Logger
	metrics     *metrics.Registry
	interval    time.Duration
	concurrency int
}

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithMetrics(m *metrics.Registry) Option {
	return func(o *options) { o.metrics = m }
}

// WithInterval sets the tick period of Run.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithConcurrency caps how many users are evaluated at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func buildOptions(defaultInterval time.Duration, opts []Option) options {
	o := options{
		clock:       clock.New(),
		interval:    defaultInterval,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
