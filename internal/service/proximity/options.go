package proximity

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"github.com/oggyb/bloom/internal/metrics"
)

const defaultConcurrency = 16

type options struct {
	clock       clock.Clock
	log         *slog.Logger
	metrics     *metrics.Registry
	seen        SeenCache
	pairScorer  Scorer
	locks       *PairLocks
	concurrency int
}

// Option configures an Orchestrator or a Matcher.
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

// WithSeenCache enables delivery tracking. Without it every view is fresh.
func WithSeenCache(c SeenCache) Option {
	return func(o *options) { o.seen = c }
}

// WithPairScorer sets the scorer used for ad hoc pairwise lookups, which
// run under a looser timeout than batch evaluation.
func WithPairScorer(s Scorer) Option {
	return func(o *options) { o.pairScorer = s }
}

// WithPairLocks shares pair locks between an Orchestrator and a Matcher so
// a swipe and a signal write on the same pair never interleave.
func WithPairLocks(l *PairLocks) Option {
	return func(o *options) {
		if l != nil {
			o.locks = l
		}
	}
}

// WithConcurrency caps in-flight scoring calls per evaluation.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock:       clock.New(),
		locks:       &PairLocks{},
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
