package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
	"github.com/cinescope/cinescope_backend/internal/dto"
)

// UserSvcFacade exposes profile reads and writes.
type UserSvcFacade interface {
	// GetProfile retrieves a user's profile by email.
	GetProfile(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile replaces the profile fields of the account identified by
	// email. The request has already passed handler-side validation
	// (presence, string types, and the dob rules).
	UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error)
}
