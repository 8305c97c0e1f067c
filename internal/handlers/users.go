package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/letshang/api/internal/models"
)

// UserLister is the store query behind GET /api/users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserResponse is the public projection of a user: exactly these five fields.
type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Location  *string `json:"location"`
	CreatedAt string  `json:"createdAt"`
}

// UsersResponse is the body of GET /api/users when a store is configured.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// UsersStubResponse is the body of GET /api/users when the server runs without a store.
type UsersStubResponse struct {
	Message string         `json:"message"`
	Users   []UserResponse `json:"users"`
	Count   int            `json:"count"`
}

// ListUsers returns a handler for GET /api/users backed by the store.
func ListUsers(repo UserLister, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := storeContext(c, timeout)
		defer cancel()

		users, err := repo.List(ctx)
		if err != nil {
			return err
		}

		response := make([]UserResponse, 0, len(users))
		for _, u := range users {
			response = append(response, UserResponse{
				ID:        u.ID.String(),
				Name:      u.Name,
				Email:     u.Email,
				Location:  u.Location,
				CreatedAt: timestamp(u.CreatedAt),
			})
		}
		return c.JSON(UsersResponse{Users: response})
	}
}

// UsersStub handles GET /api/users when no database is configured.
// It answers with an empty listing so clients can be developed against the API shape.
func UsersStub(c *fiber.Ctx) error {
	return c.JSON(UsersStubResponse{
		Message: "Users endpoint working!",
		Users:   []UserResponse{},
		Count:   0,
	})
}
