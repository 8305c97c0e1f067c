package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/letshang/api/internal/models"
)

// ActivityLister is the store query behind GET /api/activities.
type ActivityLister interface {
	ListUpcomingActive(ctx context.Context, now time.Time) ([]models.Activity, error)
}

// OrganizerResponse is the partial identity of an activity's organizer.
// Only id and name are exposed; the organizer's email and location stay private.
type OrganizerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActivityResponse is one entry in the activities listing.
// We use a dedicated response struct (instead of the raw GORM model) so we control
// exactly which fields are serialized.
type ActivityResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Location    *string           `json:"location"`
	Status      string            `json:"status"`
	StartTime   string            `json:"startTime"`
	EndTime     *string           `json:"endTime"`
	OrganizerID string            `json:"organizerId"`
	Organizer   OrganizerResponse `json:"organizer"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

// ActivitiesResponse is the body of GET /api/activities.
type ActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ListActivities returns a handler for GET /api/activities.
// It lists upcoming active activities, earliest first. Store failures are returned
// to the app's ErrorHandler, which logs them and answers with a generic 500.
func ListActivities(repo ActivityLister, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := storeContext(c, timeout)
		defer cancel()

		activities, err := repo.ListUpcomingActive(ctx, time.Now())
		if err != nil {
			return err
		}

		// make(..., 0, n) so an empty listing serializes as [] rather than null
		response := make([]ActivityResponse, 0, len(activities))
		for _, a := range activities {
			response = append(response, toActivityResponse(a))
		}
		return c.JSON(ActivitiesResponse{Activities: response})
	}
}

func toActivityResponse(a models.Activity) ActivityResponse {
	var endTime *string
	if a.EndTime != nil {
		s := timestamp(*a.EndTime)
		endTime = &s
	}

	return ActivityResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Status:      string(a.Status),
		StartTime:   timestamp(a.StartTime),
		EndTime:     endTime,
		OrganizerID: a.OrganizerID.String(),
		Organizer: OrganizerResponse{
			ID:   a.Organizer.ID.String(),
			Name: a.Organizer.Name,
		},
		CreatedAt: timestamp(a.CreatedAt),
		UpdatedAt: timestamp(a.UpdatedAt),
	}
}

// storeContext derives the context for one store call from the request.
// A non-positive timeout leaves the request context without a deadline.
func storeContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}
