package proximity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/metrics"
	"github.com/oggyb/bloom/internal/repository"
)

// Matcher applies swipes to the interaction ledger.
type Matcher struct {
	users        *repository.UserRepository
	interactions *repository.InteractionRepository
	seen         SeenCache
	locks        *PairLocks

	log     *slog.Logger
	metrics *metrics.Registry
}

func NewMatcher(database *gorm.DB, opts ...Option) *Matcher {
	o := buildOptions(opts)
	return &Matcher{
		users:        repository.NewUserRepository(database),
		interactions: repository.NewInteractionRepository(database),
		seen:         o.seen,
		locks:        o.locks,
		log:          logger.Named(o.log, "matcher"),
		metrics:      o.metrics,
	}
}

// RightSwipe records that me liked other.
//
// Returns:
//   - SPARK when other has not liked me yet.
//   - MATCH when other already liked me.
//   - BLOCKED when other rejected me; nothing is written besides consuming
//     the signal other -> me.
func (m *Matcher) RightSwipe(ctx context.Context, me, other uint64) (repository.Outcome, error) {
	if err := m.checkTarget(ctx, me, other); err != nil {
		return "", err
	}

	unlock := m.locks.lock(me, other)
	outcome, err := m.interactions.RightSwipe(ctx, me, other)
	unlock()
	if err != nil {
		m.metrics.Swipe("right", "error")
		return "", fmt.Errorf("right swipe %d->%d: %w", me, other, err)
	}

	m.metrics.Swipe("right", string(outcome))
	m.forget(ctx, me, other)
	m.log.Debug("right swipe", "user", me, "other", other, "outcome", outcome)
	return outcome, nil
}

// LeftSwipe records that me rejected other. The pair never surfaces again.
func (m *Matcher) LeftSwipe(ctx context.Context, me, other uint64) error {
	if err := m.checkTarget(ctx, me, other); err != nil {
		return err
	}

	unlock := m.locks.lock(me, other)
	err := m.interactions.LeftSwipe(ctx, me, other)
	unlock()
	if err != nil {
		m.metrics.Swipe("left", "error")
		return fmt.Errorf("left swipe %d->%d: %w", me, other, err)
	}

	m.metrics.Swipe("left", "REJECTED")
	m.forget(ctx, me, other)
	m.log.Debug("left swipe", "user", me, "other", other)
	return nil
}

func (m *Matcher) checkTarget(ctx context.Context, me, other uint64) error {
	if me == 0 || other == 0 {
		return svcErr.Validation("user ids must be non-zero")
	}
	if me == other {
		return svcErr.Validation("cannot swipe on yourself")
	}

	target, err := m.users.Get(ctx, other)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svcErr.NotFound("user not available")
	}
	if err != nil {
		return fmt.Errorf("load swipe target: %w", err)
	}
	if !target.Eligible() {
		return svcErr.NotFound("user not available")
	}
	return nil
}

// forget drops the consumed signal from the delivery cache.
func (m *Matcher) forget(ctx context.Context, me, other uint64) {
	if m.seen == nil {
		return
	}
	if err := m.seen.Forget(ctx, me, other); err != nil {
		m.log.Warn("seen cache forget failed", "user", me, "other", other, "err", err)
	}
}
