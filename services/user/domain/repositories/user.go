package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save persists a new user. Returns domain.ErrAccountExists when the
	// email or phone is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByID retrieves a user, or domain.ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByIdentifier looks an account up by email or phone.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)

	// Update persists profile changes to an existing user.
	Update(ctx context.Context, user *models.User) error
}
