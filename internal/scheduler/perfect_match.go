// Package scheduler runs the periodic batch jobs of the signal engine: the
// global perfect-match scan and the purge of expired signals.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/repository"
	"github.com/oggyb/bloom/internal/service/proximity"
)

const jobPerfectMatch = "perfect_match"

// Evaluator computes signals for one user.
type Evaluator interface {
	Evaluate(ctx context.Context, userID uint64, mode proximity.Mode) ([]proximity.SignalView, error)
}

// Report summarizes one pass over all eligible users.
type Report struct {
	Users     int
	Succeeded int
	Failed    int
	// Signals counts signals written by the pass's own evaluations.
	Signals  int
	Duration time.Duration
}

// PerfectMatch evaluates every eligible user against the global pool.
// Users are isolated from each other: a failing or panicking evaluation is
// counted and the pass carries on.
type PerfectMatch struct {
	users *repository.UserRepository
	eval  Evaluator
	mode  proximity.Mode

	clock       clock.Clock
	log         *slog.Logger
	metrics     *metrics.Registry
	interval    time.Duration
	concurrency int

	running atomic.Bool
	wg      sync.WaitGroup
}

func NewPerfectMatch(database *gorm.DB, eval Evaluator, mode proximity.Mode, opts ...Option) *PerfectMatch {
	o := buildOptions(DefaultInterval, opts)
	return &PerfectMatch{
		users:       repository.NewUserRepository(database),
		eval:        eval,
		mode:        mode,
		clock:       o.clock,
		log:         logger.Named(o.log, "scheduler").With("job", jobPerfectMatch),
		metrics:     o.metrics,
		interval:    o.interval,
		concurrency: o.concurrency,
	}
}

// RunOnce evaluates every eligible user once. It fails only when the user
// list cannot be loaded.
func (p *PerfectMatch) RunOnce(ctx context.Context) (Report, error) {
	start := p.clock.Now().UTC().Truncate(time.Millisecond)

	users, err := p.users.ListEligible(ctx)
	if err != nil {
		p.metrics.SchedulerRun(jobPerfectMatch, "error")
		return Report{}, fmt.Errorf("list eligible users: %w", err)
	}

	var (
		succeeded atomic.Int64
		failed    atomic.Int64
		signals   atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, u := range users {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			n, err := p.evaluate(gctx, u.ID)
			if err != nil {
				failed.Add(1)
				p.metrics.UserEvaluation("failed")
				p.log.Warn("perfect match evaluation failed", "user", u.ID, "err", err)
				return nil
			}
			succeeded.Add(1)
			signals.Add(int64(n))
			p.metrics.UserEvaluation("ok")
			return nil
		})
	}
	_ = g.Wait()

	report := Report{
		Users:     len(users),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Signals:   int(signals.Load()),
		Duration:  p.clock.Since(start),
	}

	result := "ok"
	if report.Failed > 0 {
		result = "partial"
	}
	p.metrics.SchedulerRun(jobPerfectMatch, result)
	p.log.Info("perfect match pass complete",
		"users", report.Users,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"signals", report.Signals,
		"duration", report.Duration,
	)
	return report, nil
}

// evaluate runs one user and returns how many signals it created.
func (p *PerfectMatch) evaluate(ctx context.Context, userID uint64) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	views, err := p.eval.Evaluate(ctx, userID, p.mode)
	if err != nil {
		return 0, err
	}
	for _, v := range views {
		if v.Created {
			n++
		}
	}
	return n, nil
}

// Run starts a pass every interval until ctx is canceled. A tick that fires
// while the previous pass is still running is skipped.
func (p *PerfectMatch) Run(ctx context.Context) {
	ticker := p.clock.Ticker(p.interval)
	defer ticker.Stop()

	p.log.Info("scheduler started", "interval", p.interval)
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			p.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			p.trigger(ctx)
		}
	}
}

// trigger starts a pass in the background unless one is in flight. It
// reports whether a pass was started.
func (p *PerfectMatch) trigger(ctx context.Context) bool {
	if !p.running.CompareAndSwap(false, true) {
		p.metrics.SchedulerRun(jobPerfectMatch, "skipped")
		p.log.Warn("previous pass still running, skipping tick")
		return false
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.running.Store(false)
		if _, err := p.RunOnce(ctx); err != nil {
			p.log.Error("perfect match pass failed", "err", err)
		}
	}()
	return true
}
