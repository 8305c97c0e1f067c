// Package testsupport provides an in-memory store for tests that exercise GORM queries
// without a running PostgreSQL.
package testsupport

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/letshang/api/internal/models"
)

// OpenSQLite returns a migrated, empty in-memory database that is closed when t ends.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// Every connection to ":memory:" is a separate database; pin the pool to one.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Activity{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// BreakStore closes the pool under db so every following query fails.
func BreakStore(t testing.TB, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	_ = sqlDB.Close()
}

// CreateUser inserts a user with a password hash set, so tests can assert it never leaks.
func CreateUser(t testing.TB, db *gorm.DB, name string) models.User {
	t.Helper()

	location := "Melbourne"
	hash := "$2a$10$not-a-real-hash"
	user := models.User{
		Name:         name,
		Email:        name + "-" + uuid.NewString()[:8] + "@example.com",
		Location:     &location,
		PasswordHash: &hash,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// CreateActivity inserts an activity organized by organizer.
func CreateActivity(t testing.TB, db *gorm.DB, organizer models.User, title string, status models.ActivityStatus, start time.Time) models.Activity {
	t.Helper()

	activity := models.Activity{
		Title:       title,
		Status:      status,
		StartTime:   start.UTC(),
		OrganizerID: organizer.ID,
	}
	if err := db.Create(&activity).Error; err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return activity
}
