package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/bloom/internal/db"
	"github.com/oggyb/bloom/internal/repository"
)

func TestUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// insert like
	require.NoError(t, repo.Upsert(ctx, 1, 2, db.StateLiked))
	// overwrite with reject
	require.NoError(t, repo.Upsert(ctx, 1, 2, db.StateRejected))

	got, err := repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, db.StateRejected, got.State)

	var count int64
	dbase.Model(&db.Interaction{}).Count(&count)
	assert.Equal(t, int64(1), count)

	none, err := repo.Get(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRightSwipeOutcomes(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)
	signals := repository.NewSignalRepository(dbase)

	require.NoError(t, signals.UpsertPair(ctx, 1, 2, 0.5, db.SourceProximity, epoch, epoch.Add(time.Hour)))

	// first like → spark, prompting signal 2→1 consumed, mirror kept
	outcome, err := repo.RightSwipe(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, repository.OutcomeSpark, outcome)

	s, err := signals.Get(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, s)
	s, err = signals.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.NotNil(t, s)

	// like back → match
	outcome, err = repo.RightSwipe(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, repository.OutcomeMatch, outcome)

	s, err = signals.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRightSwipeBlockedByRejection(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)
	signals := repository.NewSignalRepository(dbase)

	require.NoError(t, signals.UpsertPair(ctx, 1, 2, 0.5, db.SourceProximity, epoch, epoch.Add(time.Hour)))
	require.NoError(t, repo.LeftSwipe(ctx, 2, 1))

	outcome, err := repo.RightSwipe(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, repository.OutcomeBlocked, outcome)

	// no like written, signal still consumed
	like, err := repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Nil(t, like)
	s, err := signals.Get(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRightSwipeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	first, err := repo.RightSwipe(ctx, 1, 2)
	require.NoError(t, err)
	second, err := repo.RightSwipe(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	dbase.Model(&db.Interaction{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLeftSwipeRecordsRejection(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)
	signals := repository.NewSignalRepository(dbase)

	require.NoError(t, signals.UpsertPair(ctx, 1, 2, 0.5, db.SourceProximity, epoch, epoch.Add(time.Hour)))
	require.NoError(t, repo.LeftSwipe(ctx, 1, 2))

	got, err := repo.Get(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, db.StateRejected, got.State)

	s, err := signals.Get(ctx, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, s)

	seen, err := repo.InteractedWith(ctx, 2, []uint64{1, 3})
	require.NoError(t, err)
	assert.Contains(t, seen, uint64(1))
	assert.NotContains(t, seen, uint64(3))
}

func TestListSparksAndMatches(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// 1 and 99 like each other → match
	_, _ = repo.RightSwipe(ctx, 1, 99)
	_, _ = repo.RightSwipe(ctx, 99, 1)
	// 2 liked 99, unanswered → spark
	_, _ = repo.RightSwipe(ctx, 2, 99)
	// 3 liked 99, 99 rejected → neither
	_, _ = repo.RightSwipe(ctx, 3, 99)
	require.NoError(t, repo.LeftSwipe(ctx, 99, 3))

	matches, _, err := repo.ListMatches(ctx, 99, nil, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint64(1), matches[0].FromUserID)

	sparks, _, err := repo.ListSparks(ctx, 99, nil, 10)
	require.NoError(t, err)
	require.Len(t, sparks, 1)
	assert.Equal(t, uint64(2), sparks[0].FromUserID)
}

func TestListSparksPagination(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	// distinct timestamps, newest last
	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, dbase.Create(&db.Interaction{
			FromUserID: i,
			ToUserID:   99,
			State:      db.StateLiked,
			CreatedAt:  epoch.Add(time.Duration(i) * time.Second),
			UpdatedAt:  epoch.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	page1, next, err := repo.ListSparks(ctx, 99, nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, next)
	assert.Equal(t, uint64(5), page1[0].FromUserID)
	assert.Equal(t, uint64(4), page1[1].FromUserID)

	page2, next, err := repo.ListSparks(ctx, 99, next, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	require.NotNil(t, next)
	assert.Equal(t, uint64(3), page2[0].FromUserID)

	page3, next, err := repo.ListSparks(ctx, 99, next, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Nil(t, next)
	assert.Equal(t, uint64(1), page3[0].FromUserID)

	bad := "%%%"
	_, _, err = repo.ListSparks(ctx, 99, &bad, 2)
	assert.Error(t, err)
}
