package repositories

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// PersonRepository defines read operations over the names dataset.
type PersonRepository interface {
	// FindPersonByID retrieves a person and their filmography. Returns
	// apperrors.ErrNotFound when the id is unknown.
	FindPersonByID(ctx context.Context, id string) (*domain.Person, error)
}
