package services

import (
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/platform/config"
)

// NewServiceContainer wires all services against the provided repositories.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	tokenSvc := NewTokenService(cfg, repos.UserRepo)
	return &portssvc.ServiceContainer{
		Token:  tokenSvc,
		Auth:   NewAuthService(cfg, repos.UserRepo, tokenSvc),
		User:   NewUserService(repos.UserRepo),
		Movie:  NewMovieService(repos.MovieRepo),
		Person: NewPersonService(repos.PersonRepo),
	}
}
