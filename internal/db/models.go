package db

import (
	"time"
)

// Preference groups. Signals are only ever computed across groups.
const (
	GroupMale   = "MALE"
	GroupFemale = "FEMALE"
)

// Signal sources, ordered by threshold tier.
const (
	SourceProximity    = "PROXIMITY"
	SourcePerfectMatch = "PERFECT_MATCH"
)

// Interaction states written by swipes.
const (
	StateLiked    = "LIKED"
	StateRejected = "REJECTED"
)

// User is the opaque profile record the signal engine reads. Profiles are
// owned by the onboarding/identity services; this service never edits them
// outside of seeding.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	// RollNumber is the key the compatibility scorer indexes users by.
	RollNumber          string `gorm:"uniqueIndex;size:32;not null"`
	Gender              string `gorm:"size:16;not null;index:idx_users_eligible,priority:1"`
	Verified            bool   `gorm:"not null;default:false;index:idx_users_eligible,priority:2"`
	OnboardingCompleted bool   `gorm:"not null;default:false;index:idx_users_eligible,priority:3"`
	Active              bool   `gorm:"default:true"`
	LastLoginAt         time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

// Eligible reports whether the user may appear in candidate pools.
func (u User) Eligible() bool {
	return u.Verified && u.OnboardingCompleted
}

// OppositeGroup returns the preference group this user is matched against.
func (u User) OppositeGroup() string {
	if u.Gender == GroupMale {
		return GroupFemale
	}
	return GroupMale
}

// Signal is a time-bounded record that the scorer found FromUserID and
// ToUserID compatible enough to surface to each other.
//
// Composite PK: (FromUserID, ToUserID)
//   - Re-evaluation refreshes a pair in place instead of duplicating it.
//
// Indexes:
//   - idx_signal_inbox(to_user_id, expires_at, created_at DESC)
//     Serves the "active inbound signals, newest first" read.
//   - idx_signal_expiry(expires_at)
//     Serves the expired-signal purge.
type Signal struct {
	FromUserID uint64    `gorm:"primaryKey"`
	ToUserID   uint64    `gorm:"primaryKey;index:idx_signal_inbox,priority:1"`
	Score      float64   `gorm:"not null"`
	Source     string    `gorm:"size:16;not null"`
	CreatedAt  time.Time `gorm:"not null;index:idx_signal_inbox,priority:3,sort:desc"`
	ExpiresAt  time.Time `gorm:"not null;index:idx_signal_inbox,priority:2;index:idx_signal_expiry"`
}

// Interaction is the permanent record of a swipe decision.
//
// Composite PK: (FromUserID, ToUserID)
//   - A later swipe overwrites the earlier one for the same direction.
//
// Indexes:
//   - idx_interaction_to_state_updated(to_user_id, state, updated_at DESC, from_user_id)
//     Serves matches/sparks listings with cursor pagination.
type Interaction struct {
	FromUserID uint64    `gorm:"primaryKey;index:idx_interaction_to_state_updated,priority:4"`
	ToUserID   uint64    `gorm:"primaryKey;index:idx_interaction_to_state_updated,priority:1"`
	State      string    `gorm:"size:16;not null;index:idx_interaction_to_state_updated,priority:2"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index:idx_interaction_to_state_updated,priority:3,sort:desc"`
}

// Models lists every table owned by this service, in migration order.
func Models() []any {
	return []any{&User{}, &Signal{}, &Interaction{}}
}
