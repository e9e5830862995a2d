package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/bloom/internal/db"
	svcErr "github.com/oggyb/bloom/internal/errors"
	"github.com/oggyb/bloom/internal/utils/pagination"
)

// Outcome is the result of a right swipe.
type Outcome string

const (
	OutcomeSpark   Outcome = "SPARK"
	OutcomeMatch   Outcome = "MATCH"
	OutcomeBlocked Outcome = "BLOCKED"
)

// InteractionRepository provides data access for swipe decisions between
// users. It encapsulates the like/reject state machine: each swipe deletes
// the signal that prompted it and records the decision in one transaction.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new repository bound to the given DB connection.
func NewInteractionRepository(database *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// Upsert inserts or updates the decision from -> to.
//
// Behavior:
//   - If (from_user_id, to_user_id) pair exists → the row is updated with the new state.
//   - If it doesn’t exist → a new row is inserted.
//   - Composite PK ensures overwrite guarantee.
//
// Example:
//
//	repo.Upsert(ctx, 1, 2, db.StateLiked) // user 1 liked user 2
func (r *InteractionRepository) Upsert(ctx context.Context, from, to uint64, state string) error {
	return upsertInteraction(r.db.WithContext(ctx), from, to, state)
}

// Get returns the decision from -> to, or nil when none exists.
func (r *InteractionRepository) Get(ctx context.Context, from, to uint64) (*db.Interaction, error) {
	return getInteraction(r.db.WithContext(ctx), from, to, false)
}

// InteractedWith returns the candidates that have an interaction row with
// userID in either direction. Such pairs are permanently excluded from
// candidate pools, independent of signal expiry.
func (r *InteractionRepository) InteractedWith(
	ctx context.Context,
	userID uint64,
	candidateIDs []uint64,
) (map[uint64]struct{}, error) {
	out := make(map[uint64]struct{})
	if len(candidateIDs) == 0 {
		return out, nil
	}

	var rows []db.Interaction
	err := r.db.WithContext(ctx).
		Select("from_user_id", "to_user_id").
		Where(
			r.db.Where("from_user_id = ? AND to_user_id IN ?", userID, candidateIDs).
				Or("to_user_id = ? AND from_user_id IN ?", userID, candidateIDs),
		).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, i := range rows {
		if i.FromUserID == userID {
			out[i.ToUserID] = struct{}{}
		} else {
			out[i.FromUserID] = struct{}{}
		}
	}
	return out, nil
}

// RightSwipe records that me liked other.
//
// Behavior (single transaction):
//  1. Delete the signal other -> me that prompted the swipe.
//  2. If other already rejected me → BLOCKED, no LIKE is written.
//  3. Upsert me -> other = LIKED.
//  4. If other -> me is LIKED → MATCH, otherwise SPARK.
//
// Any error rolls the whole unit back.
func (r *InteractionRepository) RightSwipe(ctx context.Context, me, other uint64) (Outcome, error) {
	var outcome Outcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteSignal(tx, other, me); err != nil {
			return err
		}

		reciprocal, err := getInteraction(tx, other, me, true)
		if err != nil {
			return err
		}
		if reciprocal != nil && reciprocal.State == db.StateRejected {
			outcome = OutcomeBlocked
			return nil
		}

		if err := upsertInteraction(tx, me, other, db.StateLiked); err != nil {
			return err
		}

		// re-read under the lock: a concurrent like from other may have
		// committed between the two reads
		reciprocal, err = getInteraction(tx, other, me, true)
		if err != nil {
			return err
		}
		if reciprocal != nil && reciprocal.State == db.StateLiked {
			outcome = OutcomeMatch
		} else {
			outcome = OutcomeSpark
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

// LeftSwipe records that me rejected other and deletes the signal
// other -> me, in one transaction. The REJECTED row permanently removes the
// pair from future candidate pools.
func (r *InteractionRepository) LeftSwipe(ctx context.Context, me, other uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteSignal(tx, other, me); err != nil {
			return err
		}
		return upsertInteraction(tx, me, other, db.StateRejected)
	})
}

// ListMatches returns the users who share a mutual like with userID.
//
// Behavior:
//   - Rows other -> userID = LIKED with a reciprocal userID -> other = LIKED.
//   - Ordered by updated_at DESC, from_user_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListMatches(ctx, 42, nil, 20) // first 20 matches of user 42
func (r *InteractionRepository) ListMatches(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Interaction, *string, error) {
	reciprocal := r.db.
		Table("interactions").
		Select("1").
		Where("from_user_id = i.to_user_id AND to_user_id = i.from_user_id AND state = ?", db.StateLiked)

	query := r.db.WithContext(ctx).
		Table("interactions i").
		Where("i.to_user_id = ? AND i.state = ? AND EXISTS (?)", userID, db.StateLiked, reciprocal)

	return r.page(query, paginationToken, limit)
}

// ListSparks returns the users who liked userID and are still waiting on a
// decision: neither liked back nor rejected.
//
// Example:
//
//	repo.ListSparks(ctx, 42, nil, 20) // first 20 one-way likes for user 42
func (r *InteractionRepository) ListSparks(
	ctx context.Context,
	userID uint64,
	paginationToken *string,
	limit int,
) ([]db.Interaction, *string, error) {
	answered := r.db.
		Table("interactions").
		Select("1").
		Where("from_user_id = i.to_user_id AND to_user_id = i.from_user_id")

	query := r.db.WithContext(ctx).
		Table("interactions i").
		Where("i.to_user_id = ? AND i.state = ? AND NOT EXISTS (?)", userID, db.StateLiked, answered)

	return r.page(query, paginationToken, limit)
}

// page applies keyset pagination on (updated_at DESC, from_user_id DESC).
func (r *InteractionRepository) page(
	query *gorm.DB,
	paginationToken *string,
	limit int,
) ([]db.Interaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, svcErr.Validation(err.Error())
	}

	query = query.
		Select("i.*").
		Order("i.updated_at DESC, i.from_user_id DESC").
		Limit(limit + 1)

	// apply cursor
	if !cursor.IsZero() {
		ts := cursor.UpdatedAt()
		query = query.Where(
			"(i.updated_at < ? OR (i.updated_at = ? AND i.from_user_id < ?))",
			ts, ts, cursor.UserID,
		)
	}

	var rows []db.Interaction
	if err := query.Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(rows) > limit {
		last := rows[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			UserID:      last.FromUserID,
			UpdatedUnix: last.UpdatedAt.UnixMilli(),
		})
		nextToken = &token
		rows = rows[:limit]
	}

	return rows, nextToken, nil
}

func upsertInteraction(tx *gorm.DB, from, to uint64, state string) error {
	now := tx.NowFunc().UTC().Truncate(time.Millisecond)
	row := db.Interaction{
		FromUserID: from,
		ToUserID:   to,
		State:      state,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&row).Error
}

func getInteraction(tx *gorm.DB, from, to uint64, forUpdate bool) (*db.Interaction, error) {
	q := tx.Where("from_user_id = ? AND to_user_id = ?", from, to)
	if forUpdate {
		// no-op on sqlite, row lock on mysql
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rows []db.Interaction
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
