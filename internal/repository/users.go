package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/letshang/api/internal/models"
	"github.com/letshang/api/internal/observability"
)

// UserListLimit caps the user listing.
const UserListLimit = 10

// userListColumns is the public projection of a user. Credential columns are never selected.
var userListColumns = []string{"id", "name", "email", "location", "created_at"}

// UserRepository reads users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a repository backed by db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns up to UserListLimit users with only the public columns populated.
// No ORDER BY is applied; callers must not rely on the order the store returns.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	begin := time.Now()

	users := make([]models.User, 0, UserListLimit)
	err := r.db.WithContext(ctx).
		Select(userListColumns).
		Limit(UserListLimit).
		Find(&users).Error

	observability.ObserveStoreQuery("list_users", begin, err)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}
