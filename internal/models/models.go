// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct field tags (the backtick strings like `gorm:"..."`) tell GORM how to handle
// each field: its column name, constraints, indexes, and relationships.
//
// The data model is intentionally small:
//   - Users are people who can organize activities
//   - Activities are scheduled meetups, each owned by one organizer (a User)
//
// The schema itself is owned by the SQL files in migrations/. This API only reads from it.
package models

import (
	"time"

	// uuid provides universally unique identifiers for primary keys.
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityStatus tracks the lifecycle of an activity.
// Go has no enum keyword, so a named string type plus constants gives us type safety
// while keeping the stored values human-readable.
type ActivityStatus string

const (
	ActivityStatusActive    ActivityStatus = "active"    // Open and scheduled; the only status the public listing shows
	ActivityStatusCancelled ActivityStatus = "cancelled" // Called off by the organizer
	ActivityStatusCompleted ActivityStatus = "completed" // Already happened
)

// User represents a registered person in the system.
// PasswordHash is stored alongside the profile but must never leave the server:
// the `json:"-"` tag keeps it out of any serialized response, and listings never select it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Location     *string   // Optional free-text location; pointer = nullable
	PasswordHash *string   `json:"-"` // Credential material; nullable for accounts created by invite
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Activity is a scheduled meetup that users can join.
// OrganizerID is a foreign key to users.id: the organizer's lifecycle is independent of
// the activity, the activity only references it.
type Activity struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"not null"`
	Description *string        // Optional long-form description
	Location    *string        // Where the activity takes place
	Status      ActivityStatus `gorm:"not null;default:'active';index:idx_activities_status_start,priority:1"`
	StartTime   time.Time      `gorm:"not null;index:idx_activities_status_start,priority:2"`
	EndTime     *time.Time     // Optional end time; some activities are open-ended
	OrganizerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Organizer   User           `gorm:"foreignKey:OrganizerID"` // Preloaded (id and name only) when listing
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
// IDs are generated here rather than by a database default so the same models work
// against PostgreSQL and the SQLite database used in tests.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
