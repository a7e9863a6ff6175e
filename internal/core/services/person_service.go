package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
)

// personService implements person dataset lookups.
type personService struct {
	people portsrepo.PersonRepository
}

// NewPersonService creates a new personService.
func NewPersonService(people portsrepo.PersonRepository) portssvc.PersonSvcFacade {
	return &personService{people: people}
}

var _ portssvc.PersonSvcFacade = (*personService)(nil)

func (s *personService) GetPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.FindPersonByID(ctx, id)
}
