package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"

	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/repository"
)

const jobPurge = "signal_purge"

// SignalPurger deletes expired signals to reclaim space. Reads filter by
// expiry on their own, so a late purge never exposes an expired signal.
type SignalPurger struct {
	signals  *repository.SignalRepository
	clock    clock.Clock
	log      *slog.Logger
	metrics  *metrics.Registry
	interval time.Duration
}

func NewSignalPurger(database *gorm.DB, opts ...Option) *SignalPurger {
	o := buildOptions(DefaultPurgeInterval, opts)
	return &SignalPurger{
		signals:  repository.NewSignalRepository(database),
		clock:    o.clock,
		log:      logger.Named(o.log, "scheduler").With("job", jobPurge),
		metrics:  o.metrics,
		interval: o.interval,
	}
}

// RunOnce deletes every signal expired at the current time.
func (p *SignalPurger) RunOnce(ctx context.Context) (int64, error) {
	n, err := p.signals.PurgeExpired(ctx, p.clock.Now().UTC().Truncate(time.Millisecond))
	if err != nil {
		p.metrics.SchedulerRun(jobPurge, "error")
		return 0, err
	}
	p.metrics.SchedulerRun(jobPurge, "ok")
	p.metrics.AddPurged(n)
	if n > 0 {
		p.log.Debug("purged expired signals", "count", n)
	}
	return n, nil
}

// Run purges every interval until ctx is canceled.
func (p *SignalPurger) Run(ctx context.Context) {
	ticker := p.clock.Ticker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.RunOnce(ctx); err != nil {
				p.log.Error("signal purge failed", "err", err)
			}
		}
	}
}
