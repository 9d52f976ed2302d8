package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/services/user/domain/models"
	"github.com/wheelhouse/wheelhouse/services/user/domain/repositories"
)

// ProfilePatch describes a partial profile update; nil fields stay unchanged.
type ProfilePatch struct {
	Nickname *string
	Avatar   *string
	Gender   *int
}

// ProfileService reads and updates the caller's own profile.
type ProfileService struct {
	repo repositories.UserRepository
}

// NewProfileService returns a ProfileService wired with the given repository.
func NewProfileService(repo repositories.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update applies a partial profile update and returns the fresh profile.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if patch.Nickname != nil {
		user.Nickname = *patch.Nickname
	}
	if patch.Avatar != nil {
		user.Avatar = patch.Avatar
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
