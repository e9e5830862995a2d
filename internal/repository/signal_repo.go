package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/bloom/internal/db"
)

// ErrPairInteracted is returned by UpsertPair when either user already swiped
// on the other. No signal is written.
var ErrPairInteracted = errors.New("pair already has an interaction")

// SignalRepository provides data access for time-bounded compatibility
// signals. Visibility is always decided at read time (expires_at > now);
// the purge job only reclaims space.
type SignalRepository struct {
	db *gorm.DB
}

// NewSignalRepository creates a new repository bound to the given DB connection.
func NewSignalRepository(database *gorm.DB) *SignalRepository {
	return &SignalRepository{db: database}
}

// ListActiveInbound returns unexpired signals addressed to toUserID, most
// recent first, capped at limit (no cap when limit <= 0). Senders toUserID
// already swiped on are skipped; a one-way like from the sender keeps the
// signal visible so it can be answered.
func (r *SignalRepository) ListActiveInbound(
	ctx context.Context,
	toUserID uint64,
	now time.Time,
	limit int,
) ([]db.Signal, error) {
	swiped := r.db.
		Table("interactions i").
		Select("1").
		Where("i.from_user_id = s.to_user_id AND i.to_user_id = s.from_user_id")

	var signals []db.Signal
	q := r.db.WithContext(ctx).
		Table("signals s").
		Where("s.to_user_id = ? AND s.expires_at > ? AND NOT EXISTS (?)", toUserID, now, swiped).
		Order("s.created_at DESC, s.from_user_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&signals).Error
	return signals, err
}

// CrossSignaled returns the candidates that already have an active signal in
// both directions with userID.
func (r *SignalRepository) CrossSignaled(
	ctx context.Context,
	userID uint64,
	candidateIDs []uint64,
	now time.Time,
) (map[uint64]struct{}, error) {
	out := make(map[uint64]struct{})
	if len(candidateIDs) == 0 {
		return out, nil
	}

	var rows []db.Signal
	err := r.db.WithContext(ctx).
		Select("from_user_id", "to_user_id").
		Where("expires_at > ?", now).
		Where(
			r.db.Where("from_user_id = ? AND to_user_id IN ?", userID, candidateIDs).
				Or("to_user_id = ? AND from_user_id IN ?", userID, candidateIDs),
		).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	outbound := make(map[uint64]bool)
	inbound := make(map[uint64]bool)
	for _, s := range rows {
		if s.FromUserID == userID {
			outbound[s.ToUserID] = true
		} else {
			inbound[s.FromUserID] = true
		}
	}
	for id := range outbound {
		if inbound[id] {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

// UpsertPair writes the signal a→b and its mirror b→a with identical score,
// source and lifetime, in one transaction.
//
// Behavior:
//   - If either user has swiped on the other → ErrPairInteracted, nothing written.
//   - If the ordered pair exists → score/source/created_at/expires_at are refreshed.
//   - If it doesn't exist → a new row is inserted.
//   - Composite PK ensures re-evaluation never duplicates a pair.
func (r *SignalRepository) UpsertPair(
	ctx context.Context,
	a, b uint64,
	score float64,
	source string,
	createdAt, expiresAt time.Time,
) error {
	rows := []db.Signal{
		{FromUserID: a, ToUserID: b, Score: score, Source: source, CreatedAt: createdAt, ExpiresAt: expiresAt},
		{FromUserID: b, ToUserID: a, Score: score, Source: source, CreatedAt: createdAt, ExpiresAt: expiresAt},
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// locking read so a swipe committing mid-way waits for this write
		var swiped []db.Interaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
			Limit(1).
			Find(&swiped).Error
		if err != nil {
			return err
		}
		if len(swiped) > 0 {
			return ErrPairInteracted
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "source", "created_at", "expires_at"}),
		}).Create(&rows).Error
	})
}

// Get returns the signal from→to regardless of expiry, or nil.
func (r *SignalRepository) Get(ctx context.Context, from, to uint64) (*db.Signal, error) {
	var rows []db.Signal
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", from, to).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// PurgeExpired deletes every signal with expires_at <= now.
func (r *SignalRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&db.Signal{})
	return res.RowsAffected, res.Error
}

// deleteSignal removes the signal from→to inside tx.
func deleteSignal(tx *gorm.DB, from, to uint64) error {
	return tx.Where("from_user_id = ? AND to_user_id = ?", from, to).Delete(&db.Signal{}).Error
}
