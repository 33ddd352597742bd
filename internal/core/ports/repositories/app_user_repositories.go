package repositories

import (
	"context"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
)

// AppUserRepositoryFacade defines persistence for application login users.
type AppUserRepositoryFacade interface {
	// SaveAppUser persists a new user and returns its generated ID.
	// Returns apperrors.ErrDuplicate when the username is taken.
	SaveAppUser(ctx context.Context, user domain.AppUser) (int64, error)

	// FindAppUserByID retrieves a user by ID.
	FindAppUserByID(ctx context.Context, userID int64) (*domain.AppUser, error)

	// FindAppUserByUsername retrieves a user by username.
	FindAppUserByUsername(ctx context.Context, username string) (*domain.AppUser, error)
}
