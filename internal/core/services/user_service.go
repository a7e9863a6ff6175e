package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
)

// userService implements profile reads and writes.
type userService struct {
	users portsrepo.UserRepositoryFacade
}

// NewUserService creates a new userService.
func NewUserService(users portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{users: users}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindUserByEmail(ctx, email)
}

// UpdateProfile overwrites the four profile fields. Field presence, types and
// the dob rules are validated at the handler boundary; ownership is checked
// there too, against the verified bearer claims.
func (s *userService) UpdateProfile(ctx context.Context, email string, req dto.UpdateProfileRequest) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, email, req.FirstName, req.LastName, req.DOB, req.Address)
}
