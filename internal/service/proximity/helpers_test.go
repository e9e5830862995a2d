package proximity_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/bloom/internal/cache"
	"github.com/oggyb/bloom/internal/config"
	"github.com/oggyb/bloom/internal/db"
	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/geo"
	blog "github.com/oggyb/bloom/internal/logger"
	"github.com/oggyb/bloom/internal/scorer"
	"github.com/oggyb/bloom/internal/service/proximity"
)

var epoch = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

// Origin of the test neighborhood; see nearby().
const (
	baseLat = 31.2540
	baseLng = 75.7060
)

// fakeScorer returns canned scores keyed by the canonical pair.
type fakeScorer struct {
	mu     sync.Mutex
	scores map[string]float64
	fail   map[string]bool
	calls  int
	hook   func()
}

func newFakeScorer() *fakeScorer {
	return &fakeScorer{scores: map[string]float64{}, fail: map[string]bool{}}
}

func pairKey(a, b db.User) string {
	idA, idB := scorer.Canonical(
		scorer.Subject{Key: a.RollNumber, Group: a.Gender},
		scorer.Subject{Key: b.RollNumber, Group: b.Gender},
	)
	return idA + "|" + idB
}

func (f *fakeScorer) set(a, b db.User, score float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[pairKey(a, b)] = score
}

func (f *fakeScorer) failFor(a, b db.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[pairKey(a, b)] = true
}

// onScore runs fn inside every Score call, after the lookup.
func (f *fakeScorer) onScore(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hook = fn
}

func (f *fakeScorer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeScorer) Score(_ context.Context, a, b scorer.Subject) (float64, error) {
	idA, idB := scorer.Canonical(a, b)
	key := idA + "|" + idB

	f.mu.Lock()
	f.calls++
	failed, score, hook := f.fail[key], f.scores[key], f.hook
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if failed {
		return 0, svcErr.Unavailable(errors.New("scorer down"))
	}
	return score, nil
}

type env struct {
	db     *gorm.DB
	clock  *clock.Mock
	index  *geo.Index
	scorer *fakeScorer
	cache  *cache.RedisCache
	cfg    *config.Config
	orch   *proximity.Orchestrator
	match  *proximity.Matcher
}

func setupEnv(t *testing.T, opts ...proximity.Option) *env {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	database, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		NowFunc: db.Now,
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db.Models()...))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	mock := clock.NewMock()
	mock.Set(epoch)

	e := &env{
		db:     database,
		clock:  mock,
		index:  geo.NewIndex(geo.WithClock(mock), geo.WithLogger(blog.Nop())),
		scorer: newFakeScorer(),
		cache:  rc,
		cfg:    cfg,
	}

	base := []proximity.Option{
		proximity.WithClock(mock),
		proximity.WithLogger(blog.Nop()),
		proximity.WithSeenCache(rc),
	}
	base = append(base, opts...)
	e.orch = proximity.NewOrchestrator(database, e.index, e.scorer, base...)
	e.match = proximity.NewMatcher(database, base...)
	return e
}

// user inserts an eligible user; mutate may override any field.
func (e *env) user(t *testing.T, id uint64, gender string, mutate ...func(*db.User)) db.User {
	t.Helper()
	u := db.User{
		ID:                  id,
		Username:            fmt.Sprintf("user%d", id),
		Email:               fmt.Sprintf("user%d@example.com", id),
		PasswordHash:        "x",
		RollNumber:          fmt.Sprintf("R%04d", id),
		Gender:              gender,
		Verified:            true,
		OnboardingCompleted: true,
		Active:              true,
		LastLoginAt:         epoch,
	}
	for _, m := range mutate {
		m(&u)
	}
	require.NoError(t, e.db.Create(&u).Error)
	return u
}

// place puts u at the given offset, in units of 0.0001°, from the origin.
func (e *env) place(t *testing.T, u db.User, dLat, dLng float64) {
	t.Helper()
	require.NoError(t, e.index.Update(u.ID, baseLat+dLat*0.0001, baseLng+dLng*0.0001))
}

func unverified(u *db.User) { u.Verified = false }
