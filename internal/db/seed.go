package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedUsers is the number of demo users SeedTestData creates.
const SeedUsers = 20

// SeedTestData resets the database and populates it with demo users and a
// handful of interactions.
//
// Behavior:
//  1. Clears existing data in `interactions`, `signals` and `users`.
//  2. Creates 20 users (10 MALE, 10 FEMALE) with hashed passwords and roll
//     numbers; every 5th user is left unverified so eligibility filtering is
//     visible in a demo.
//  3. Writes ~30 random cross-group interactions (~70% likes), guaranteeing
//     a mutual like for every 3rd pair.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedTestData(db *gorm.DB, log *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"interactions", "signals", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Info("cleared existing data")

	// one hash for everyone, bcrypt is slow on purpose
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := make([]User, 0, SeedUsers)
	for i := 1; i <= SeedUsers; i++ {
		gender := GroupMale
		if i > SeedUsers/2 {
			gender = GroupFemale
		}
		users = append(users, User{
			Username:            fmt.Sprintf("user%d", i),
			Email:               fmt.Sprintf("user%d@example.com", i),
			PasswordHash:        string(hash),
			RollNumber:          fmt.Sprintf("R%04d", i),
			Gender:              gender,
			Verified:            i%5 != 0,
			OnboardingCompleted: true,
			Active:              true,
			LastLoginAt:         time.Now().Add(-time.Duration(r.Intn(500)) * time.Hour),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	log.Info("seeded users", "count", len(users))

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}

	counter := 0
	for i := 0; i < 30; i++ {
		// first half is MALE, second half FEMALE
		from := users[r.Intn(SeedUsers/2)]
		to := users[SeedUsers/2+r.Intn(SeedUsers/2)]
		if r.Intn(2) == 0 {
			from, to = to, from
		}

		state := StateRejected
		if r.Intn(100) < 70 {
			state = StateLiked
		}

		rows := []Interaction{{FromUserID: from.ID, ToUserID: to.ID, State: state}}
		if counter%3 == 0 {
			// guarantee a mutual like
			rows[0].State = StateLiked
			rows = append(rows, Interaction{FromUserID: to.ID, ToUserID: from.ID, State: StateLiked})
		}
		if err := db.Clauses(upsert).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to seed interaction: %w", err)
		}
		counter++
	}
	log.Info("seeded interactions", "pairs", counter)

	return nil
}
