// Package repository holds the read queries this API runs against the store.
// Each repository wraps the shared *gorm.DB; handlers depend on small interfaces
// satisfied by these types so the store can be swapped out in tests.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/letshang/api/internal/models"
	"github.com/letshang/api/internal/observability"
)

// UpcomingActivitiesLimit caps the upcoming-activities listing.
const UpcomingActivitiesLimit = 20

// ActivityRepository reads activities.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns a repository backed by db.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListUpcomingActive returns up to UpcomingActivitiesLimit activities whose status is
// active and whose start time is at or after now, earliest first. Each activity has its
// Organizer populated with id and name only.
func (r *ActivityRepository) ListUpcomingActive(ctx context.Context, now time.Time) ([]models.Activity, error) {
	begin := time.Now()

	activities := make([]models.Activity, 0, UpcomingActivitiesLimit)
	err := r.db.WithContext(ctx).
		Preload("Organizer", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name")
		}).
		Where("status = ? AND start_time >= ?", models.ActivityStatusActive, now.UTC()).
		Order("start_time ASC").
		Limit(UpcomingActivitiesLimit).
		Find(&activities).Error

	observability.ObserveStoreQuery("list_upcoming_activities", begin, err)
	if err != nil {
		return nil, errors.Wrap(err, "list upcoming activities")
	}
	return activities, nil
}
