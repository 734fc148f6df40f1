package userRepo

import (
	"context"

	"catering/models"
)

// UserRepository defines methods for staff account data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by their email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record and stamps its timestamps.
	Create(ctx context.Context, user *models.User) error
	// Update overwrites an existing user record.
	Update(ctx context.Context, user *models.User) error
}
