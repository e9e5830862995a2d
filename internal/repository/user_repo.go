package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/bloom/internal/db"
)

// UserRepository reads the opaque profile records the engine filters
// candidates with.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Get returns the user with id, or gorm.ErrRecordNotFound.
func (r *UserRepository) Get(ctx context.Context, id uint64) (db.User, error) {
	var u db.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	return u, err
}

// GetMany returns the users among ids that exist, keyed by id.
func (r *UserRepository) GetMany(ctx context.Context, ids []uint64) (map[uint64]db.User, error) {
	out := make(map[uint64]db.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []db.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// EligibleAmong filters ids down to verified, onboarded users in group,
// preserving the order of ids.
func (r *UserRepository) EligibleAmong(ctx context.Context, ids []uint64, group string) ([]db.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []db.User
	err := r.eligible(ctx).
		Where("gender = ? AND id IN ?", group, ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]db.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]db.User, 0, len(users))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// ListEligibleInGroup returns every eligible user in group except excludeID.
// This is the global candidate pool of the perfect-match scan.
func (r *UserRepository) ListEligibleInGroup(ctx context.Context, group string, excludeID uint64) ([]db.User, error) {
	var users []db.User
	err := r.eligible(ctx).
		Where("gender = ? AND id <> ?", group, excludeID).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// ListEligible returns every verified, onboarded user.
func (r *UserRepository) ListEligible(ctx context.Context) ([]db.User, error) {
	var users []db.User
	err := r.eligible(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) eligible(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db.User{}).
		Where("verified = ? AND onboarding_completed = ?", true, true)
}
