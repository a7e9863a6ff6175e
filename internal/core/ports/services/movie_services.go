package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// MovieSvcFacade exposes movie dataset lookups.
type MovieSvcFacade interface {
	// SearchMovies returns one fixed-size page of matching titles with
	// length-aware pagination metadata.
	SearchMovies(ctx context.Context, title string, year *int, page int) ([]domain.MovieSummary, *domain.Page, error)

	// GetMovieDetails retrieves the full detail view of a single title.
	GetMovieDetails(ctx context.Context, imdbID string) (*domain.Movie, error)
}

// PersonSvcFacade exposes person dataset lookups.
type PersonSvcFacade interface {
	// GetPersonByID retrieves a person and their filmography.
	GetPersonByID(ctx context.Context, id string) (*domain.Person, error)
}
