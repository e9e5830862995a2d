package geo

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/oggyb/bloom/internal/metrics"
)

// Default index configuration. Cells of 0.0005° are ~55m on a side, so the
// default 50m query radius touches a 3x3 neighborhood.
const (
	DefaultCellSizeDeg    = 0.0005
	DefaultDebounceMeters = 10.0
	DefaultStaleness      = 30 * time.Second
	DefaultEvictionTTL    = 60 * time.Second
	DefaultSweepInterval  = 30 * time.Second
)

// Option configures an Index.
type Option func(*Index)

// WithClock injects the time source. Tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(i *Index) { i.clock = c }
}

func WithCellSize(deg float64) Option {
	return func(i *Index) {
		if deg > 0 {
			i.cellSizeDeg = deg
		}
	}
}

// WithDebounce sets the movement below which an update only refreshes the
// timestamp.
func WithDebounce(meters float64) Option {
	return func(i *Index) {
		if meters >= 0 {
			i.debounceMeters = meters
		}
	}
}

// WithStaleness sets the maximum sample age QueryNearby accepts.
func WithStaleness(d time.Duration) Option {
	return func(i *Index) {
		if d > 0 {
			i.staleness = d
		}
	}
}

// WithEvictionTTL sets the age after which the sweep drops a user.
func WithEvictionTTL(d time.Duration) Option {
	return func(i *Index) {
		if d > 0 {
			i.evictionTTL = d
		}
	}
}

func WithSweepInterval(d time.Duration) Option {
	return func(i *Index) {
		if d > 0 {
			i.sweepInterval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(i *Index) {
		if l != nil {
			i.log = l
		}
	}
}

func WithMetrics(m *metrics.Registry) Option {
	return func(i *Index) { i.metrics = m }
}
