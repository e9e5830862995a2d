// Package proximity turns nearby (or globally eligible) users into
// compatibility signals and drives the swipe state machine on top of them.
package proximity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/db"
	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/repository"
	"github.com/oggyb/bloom/internal/scorer"
)

// Scorer returns the compatibility of two users. Errors mean "no score".
type Scorer interface {
	Score(ctx context.Context, a, b scorer.Subject) (float64, error)
}

// Locator answers which users are currently near a user.
type Locator interface {
	QueryNearby(userID uint64, radiusMeters float64) []uint64
	Remove(userID uint64)
}

// SeenCache remembers which signals were already delivered to a user. It is
// advisory only; the persisted interactions decide who is excluded.
type SeenCache interface {
	LastDelivered(ctx context.Context, userID uint64, others []uint64) (map[uint64]time.Time, error)
	MarkDelivered(ctx context.Context, userID uint64, others []uint64, at time.Time) error
	Forget(ctx context.Context, userID, otherID uint64) error
}

// Pool selects where candidates come from.
type Pool int

const (
	// PoolNearby draws candidates from the location index.
	PoolNearby Pool = iota
	// PoolGlobal draws every eligible user of the opposite group.
	PoolGlobal
)

func (p Pool) String() string {
	if p == PoolGlobal {
		return "global"
	}
	return "nearby"
}

// Mode parameterizes one evaluation.
type Mode struct {
	Pool Pool
	// Threshold is the lowest score that produces a signal.
	Threshold float64
	// PerfectThreshold promotes a signal to PERFECT_MATCH.
	PerfectThreshold float64
	TTL              time.Duration
	RadiusMeters     float64
	MaxSignals       int
	// MarkSeen records the returned signals as delivered.
	MarkSeen bool
}

// NearbyMode is the on-demand evaluation behind CheckSignals.
func NearbyMode(cfg *config.Config) Mode {
	return Mode{
		Pool:             PoolNearby,
		Threshold:        cfg.Proximity.Threshold,
		PerfectThreshold: cfg.Proximity.PerfectThreshold,
		TTL:              cfg.Proximity.TTL,
		RadiusMeters:     cfg.Proximity.RadiusMeters,
		MaxSignals:       cfg.Proximity.MaxSignals,
		MarkSeen:         true,
	}
}

// GlobalMode is the scheduled perfect-match scan: only PERFECT_MATCH scores
// qualify and signals live longer.
func GlobalMode(cfg *config.Config) Mode {
	return Mode{
		Pool:             PoolGlobal,
		Threshold:        cfg.Proximity.PerfectThreshold,
		PerfectThreshold: cfg.Proximity.PerfectThreshold,
		TTL:              cfg.Scheduler.PerfectTTL,
		MaxSignals:       cfg.Proximity.MaxSignals,
	}
}

// Classify maps a score onto a signal source, or "" when it does not qualify.
func (m Mode) Classify(score float64) string {
	switch {
	case score >= m.PerfectThreshold:
		return db.SourcePerfectMatch
	case score >= m.Threshold:
		return db.SourceProximity
	default:
		return ""
	}
}

// SignalView is one signal as shown to the receiving user.
type SignalView struct {
	UserID    uint64
	Score     float64
	Source    string
	CreatedAt time.Time
	ExpiresAt time.Time
	// Fresh is false when this signal was already delivered.
	Fresh bool
	// Created is set on signals written by the evaluation that returned them.
	Created bool
}

// FreshFor returns how long the signal stays visible after now.
func (v SignalView) FreshFor(now time.Time) time.Duration {
	if d := v.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Orchestrator evaluates a user's candidate pool into signals.
type Orchestrator struct {
	users        *repository.UserRepository
	signals      *repository.SignalRepository
	interactions *repository.InteractionRepository

	locator    Locator
	scorer     Scorer
	pairScorer Scorer
	seen       SeenCache
	locks      *PairLocks

	clock       clock.Clock
	log         *slog.Logger
	metrics     *metrics.Registry
	concurrency int
}

// NewOrchestrator wires an Orchestrator over database. locator may be nil
// when only global evaluations are run.
func NewOrchestrator(database *gorm.DB, locator Locator, sc Scorer, opts ...Option) *Orchestrator {
	o := buildOptions(opts)
	if o.pairScorer == nil {
		o.pairScorer = sc
	}
	return &Orchestrator{
		users:        repository.NewUserRepository(database),
		signals:      repository.NewSignalRepository(database),
		interactions: repository.NewInteractionRepository(database),
		locator:      locator,
		scorer:       sc,
		pairScorer:   o.pairScorer,
		seen:         o.seen,
		locks:        o.locks,
		clock:        o.clock,
		log:          logger.Named(o.log, "proximity"),
		metrics:      o.metrics,
		concurrency:  o.concurrency,
	}
}

// Now is the orchestrator's clock, UTC with millisecond precision.
func (o *Orchestrator) Now() time.Time {
	return o.clock.Now().UTC().Truncate(time.Millisecond)
}

type scored struct {
	user   db.User
	score  float64
	source string
}

// Evaluate returns userID's active signals, computing new ones from the
// candidate pool selected by mode.
//
// Behavior:
//  1. Loads unexpired inbound signals, newest first, capped at MaxSignals.
//  2. Builds the pool: nearby or global, opposite group, eligible only.
//  3. Drops candidates with an interaction in either direction.
//  4. Drops candidates already cross-signaled with userID.
//  5. Scores the rest concurrently; failures are absorbed.
//  6. Classifies against Threshold/PerfectThreshold.
//  7. Upserts both directions of each qualifying pair, unless a swipe on the
//     pair landed while it was being scored.
//  8. Stops scoring once existing + qualifying reaches MaxSignals.
//  9. Returns existing and new signals merged, newest first.
//
// Scoring outages degrade the result; they never fail the call. Persistence
// errors do.
func (o *Orchestrator) Evaluate(ctx context.Context, userID uint64, mode Mode) ([]SignalView, error) {
	me, err := o.loadEligible(ctx, userID)
	if errors.Is(err, svcErr.ErrNotFound) && o.locator != nil {
		// unavailable users stop showing up in other people's lookups
		o.locator.Remove(userID)
	}
	if err != nil {
		return nil, err
	}

	now := o.Now()
	log := o.log.With("user", userID, "pool", mode.Pool.String())

	existing, err := o.signals.ListActiveInbound(ctx, userID, now, mode.MaxSignals)
	if err != nil {
		return nil, fmt.Errorf("load inbound signals: %w", err)
	}

	var fresh []scored
	if budget := mode.MaxSignals - len(existing); budget > 0 {
		candidates, err := o.candidates(ctx, me, mode)
		if err != nil {
			return nil, err
		}

		qualified := o.score(ctx, log, me, candidates, mode, budget)
		fresh, err = o.persist(ctx, log, me, qualified, now, now.Add(mode.TTL))
		if err != nil {
			return nil, err
		}

		log.Debug("evaluation complete",
			"existing", len(existing),
			"candidates", len(candidates),
			"qualified", len(qualified),
			"written", len(fresh),
		)
	}

	views := merge(existing, fresh, now, mode.TTL)
	if mode.MarkSeen {
		o.markSeen(ctx, log, userID, views, now)
	}
	return views, nil
}

// persist writes both directions of each scored pair and returns the ones
// written. A pair swiped on while it was being scored is dropped.
func (o *Orchestrator) persist(
	ctx context.Context,
	log *slog.Logger,
	me db.User,
	qualified []scored,
	now, expiresAt time.Time,
) ([]scored, error) {
	written := qualified[:0]
	for _, s := range qualified {
		unlock := o.locks.lock(me.ID, s.user.ID)
		err := o.signals.UpsertPair(ctx, me.ID, s.user.ID, s.score, s.source, now, expiresAt)
		unlock()
		if errors.Is(err, repository.ErrPairInteracted) {
			log.Debug("pair swiped during evaluation, signal dropped", "other", s.user.ID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("persist signal %d<->%d: %w", me.ID, s.user.ID, err)
		}
		o.metrics.SignalPairWritten(s.source)
		written = append(written, s)
	}
	return written, nil
}

// candidates returns the filtered pool in evaluation order.
func (o *Orchestrator) candidates(ctx context.Context, me db.User, mode Mode) ([]db.User, error) {
	var (
		pool []db.User
		err  error
	)
	switch mode.Pool {
	case PoolGlobal:
		pool, err = o.users.ListEligibleInGroup(ctx, me.OppositeGroup(), me.ID)
	default:
		if o.locator == nil {
			return nil, nil
		}
		nearby := o.locator.QueryNearby(me.ID, mode.RadiusMeters)
		pool, err = o.users.EligibleAmong(ctx, nearby, me.OppositeGroup())
	}
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	ids := make([]uint64, len(pool))
	for i, u := range pool {
		ids[i] = u.ID
	}

	blocked, err := o.interactions.InteractedWith(ctx, me.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	signaled, err := o.signals.CrossSignaled(ctx, me.ID, ids, o.Now())
	if err != nil {
		return nil, fmt.Errorf("load signaled pairs: %w", err)
	}

	out := pool[:0]
	for _, u := range pool {
		if _, ok := blocked[u.ID]; ok {
			continue
		}
		if _, ok := signaled[u.ID]; ok {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// score fans out one scorer call per candidate with bounded concurrency and
// returns the qualifying results, best first, trimmed to budget.
func (o *Orchestrator) score(
	ctx context.Context,
	log *slog.Logger,
	me db.User,
	candidates []db.User,
	mode Mode,
	budget int,
) []scored {
	if len(candidates) == 0 {
		return nil
	}

	var (
		mu          sync.Mutex
		qualified   []scored
		unavailable int
	)
	full := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(qualified) >= budget
	}

	self := subject(me)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for _, c := range candidates {
		if full() || gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			score, err := o.scorer.Score(gctx, self, subject(c))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				unavailable++
				return nil
			}
			if source := mode.Classify(score); source != "" {
				qualified = append(qualified, scored{user: c, score: score, source: source})
			}
			return nil
		})
	}
	_ = g.Wait()

	if unavailable > 0 {
		log.Warn("scorer unavailable for some candidates", "failed", unavailable)
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].score != qualified[j].score {
			return qualified[i].score > qualified[j].score
		}
		return qualified[i].user.ID < qualified[j].user.ID
	})
	if len(qualified) > budget {
		qualified = qualified[:budget]
	}
	return qualified
}

// PairScore returns the compatibility of userID with otherID for display.
// Users of the same group score 0; an unavailable scorer also yields 0.
func (o *Orchestrator) PairScore(ctx context.Context, userID, otherID uint64) (float64, error) {
	if userID == 0 || otherID == 0 {
		return 0, svcErr.Validation("user ids must be non-zero")
	}
	if userID == otherID {
		return 0, svcErr.Validation("cannot score a user against themselves")
	}

	found, err := o.users.GetMany(ctx, []uint64{userID, otherID})
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	me, ok := found[userID]
	if !ok {
		return 0, svcErr.NotFound("user not found")
	}
	other, ok := found[otherID]
	if !ok {
		return 0, svcErr.NotFound("other user not found")
	}

	if me.Gender == other.Gender {
		return 0, nil
	}

	score, err := o.pairScorer.Score(ctx, subject(me), subject(other))
	if err != nil {
		o.log.Warn("pair score unavailable", "user", userID, "other", otherID, "err", err)
		return 0, nil
	}
	return score, nil
}

func (o *Orchestrator) loadEligible(ctx context.Context, userID uint64) (db.User, error) {
	if userID == 0 {
		return db.User{}, svcErr.Validation("user_id must be non-zero")
	}
	me, err := o.users.Get(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.User{}, svcErr.NotFound("user not found")
	}
	if err != nil {
		return db.User{}, fmt.Errorf("load user: %w", err)
	}
	if !me.Eligible() {
		return db.User{}, svcErr.NotFound("user not available")
	}
	return me, nil
}

func (o *Orchestrator) markSeen(ctx context.Context, log *slog.Logger, userID uint64, views []SignalView, now time.Time) {
	if o.seen == nil || len(views) == 0 {
		return
	}
	ids := make([]uint64, len(views))
	for i, v := range views {
		ids[i] = v.UserID
	}

	last, err := o.seen.LastDelivered(ctx, userID, ids)
	if err != nil {
		log.Warn("seen cache read failed", "err", err)
		return
	}
	for i := range views {
		at, ok := last[views[i].UserID]
		views[i].Fresh = !ok || at.Before(views[i].CreatedAt)
	}

	if err := o.seen.MarkDelivered(ctx, userID, ids, now); err != nil {
		log.Warn("seen cache write failed", "err", err)
	}
}

// merge combines existing inbound signals with freshly written ones. A pair
// present in both is reported once, with the new values.
func merge(existing []db.Signal, fresh []scored, now time.Time, ttl time.Duration) []SignalView {
	byUser := make(map[uint64]SignalView, len(existing)+len(fresh))
	for _, s := range existing {
		byUser[s.FromUserID] = SignalView{
			UserID:    s.FromUserID,
			Score:     s.Score,
			Source:    s.Source,
			CreatedAt: s.CreatedAt.UTC(),
			ExpiresAt: s.ExpiresAt.UTC(),
			Fresh:     true,
		}
	}
	for _, s := range fresh {
		byUser[s.user.ID] = SignalView{
			UserID:    s.user.ID,
			Score:     s.score,
			Source:    s.source,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
			Fresh:     true,
			Created:   true,
		}
	}

	views := make([]SignalView, 0, len(byUser))
	for _, v := range byUser {
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.UserID < b.UserID
	})
	return views
}

func subject(u db.User) scorer.Subject {
	return scorer.Subject{Key: u.RollNumber, Group: u.Gender}
}
