package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/bloom/internal/db"
)

// setup in-memory DB, one per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: db.Now,
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db.Models()...), "failed to migrate")
	return database
}

// seedUser inserts an eligible user unless overridden by mutate.
func seedUser(t *testing.T, database *gorm.DB, id uint64, gender string, mutate ...func(*db.User)) db.User {
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
		LastLoginAt:         db.Now(),
	}
	for _, m := range mutate {
		m(&u)
	}
	require.NoError(t, database.Create(&u).Error)
	return u
}
