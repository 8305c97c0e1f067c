package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letshang/api/internal/models"
	"github.com/letshang/api/internal/testsupport"
)

func TestListUpcomingActiveFiltersByStatusAndStart(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	now := time.Now().UTC().Truncate(time.Second)
	organizer := testsupport.CreateUser(t, db, "ana")

	testsupport.CreateActivity(t, db, organizer, "picnic", models.ActivityStatusActive, now.Add(2*time.Hour))
	testsupport.CreateActivity(t, db, organizer, "hike", models.ActivityStatusActive, now.Add(time.Hour))
	testsupport.CreateActivity(t, db, organizer, "rained out", models.ActivityStatusCancelled, now.Add(3*time.Hour))
	testsupport.CreateActivity(t, db, organizer, "yesterday", models.ActivityStatusActive, now.Add(-24*time.Hour))
	testsupport.CreateActivity(t, db, organizer, "done", models.ActivityStatusCompleted, now.Add(4*time.Hour))

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "hike", activities[0].Title)
	assert.Equal(t, "picnic", activities[1].Title)
	for _, a := range activities {
		assert.Equal(t, models.ActivityStatusActive, a.Status)
		assert.False(t, a.StartTime.Before(now))
	}
}

func TestListUpcomingActiveIncludesActivityStartingNow(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	now := time.Now().UTC().Truncate(time.Second)
	organizer := testsupport.CreateUser(t, db, "ben")
	testsupport.CreateActivity(t, db, organizer, "right now", models.ActivityStatusActive, now)

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "right now", activities[0].Title)
}

func TestListUpcomingActiveCapsAndSorts(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	now := time.Now().UTC().Truncate(time.Second)
	organizer := testsupport.CreateUser(t, db, "cam")

	// Insert in descending start order so the store's natural order is the wrong one.
	for i := 25; i > 0; i-- {
		testsupport.CreateActivity(t, db, organizer, fmt.Sprintf("meetup %02d", i), models.ActivityStatusActive, now.Add(time.Duration(i)*time.Hour))
	}

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, activities, UpcomingActivitiesLimit)

	assert.Equal(t, "meetup 01", activities[0].Title)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].StartTime.Before(activities[i-1].StartTime), "not sorted at %d", i)
	}
}

func TestListUpcomingActivePreloadsOrganizerIdentityOnly(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	now := time.Now().UTC().Truncate(time.Second)
	organizer := testsupport.CreateUser(t, db, "dee")
	testsupport.CreateActivity(t, db, organizer, "board games", models.ActivityStatusActive, now.Add(time.Hour))

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, activities, 1)

	got := activities[0].Organizer
	assert.Equal(t, organizer.ID, got.ID)
	assert.Equal(t, "dee", got.Name)
	assert.Empty(t, got.Email)
	assert.Nil(t, got.Location)
	assert.Nil(t, got.PasswordHash)
}

func TestListUpcomingActiveEmptyStore(t *testing.T) {
	db := testsupport.OpenSQLite(t)

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestListUpcomingActiveWrapsStoreErrors(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	testsupport.BreakStore(t, db)

	activities, err := NewActivityRepository(db).ListUpcomingActive(context.Background(), time.Now())
	require.Error(t, err)
	assert.Nil(t, activities)
	assert.Contains(t, err.Error(), "list upcoming activities")
}

func TestUserListProjectsPublicColumns(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	created := testsupport.CreateUser(t, db, "eve")

	users, err := NewUserRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	got := users[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "eve", got.Name)
	assert.Equal(t, created.Email, got.Email)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Melbourne", *got.Location)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.PasswordHash)
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestUserListCapsAtLimit(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	for i := 0; i < 15; i++ {
		testsupport.CreateUser(t, db, fmt.Sprintf("user%02d", i))
	}

	users, err := NewUserRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, UserListLimit)
}

func TestUserListWrapsStoreErrors(t *testing.T) {
	db := testsupport.OpenSQLite(t)
	testsupport.BreakStore(t, db)

	_, err := NewUserRepository(db).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list users")
}
