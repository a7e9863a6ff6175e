package repositories

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// MovieRepository defines read operations over the movie dataset.
type MovieRepository interface {
	// SearchMovies returns one page of titles matching the optional filters
	// plus the total number of matches. Title is a substring match, year an
	// exact match when non-nil.
	SearchMovies(ctx context.Context, title string, year *int, limit int, offset int) ([]domain.MovieSummary, int, error)

	// FindMovieByID retrieves the full detail view of a single title.
	// Returns apperrors.ErrNotFound when the id is unknown.
	FindMovieByID(ctx context.Context, imdbID string) (*domain.Movie, error)
}
