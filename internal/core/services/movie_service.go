package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
)

// searchPageSize is the fixed number of titles per search result page.
const searchPageSize = 100

// movieService implements movie dataset lookups.
type movieService struct {
	movies portsrepo.MovieRepository
}

// NewMovieService creates a new movieService.
func NewMovieService(movies portsrepo.MovieRepository) portssvc.MovieSvcFacade {
	return &movieService{movies: movies}
}

var _ portssvc.MovieSvcFacade = (*movieService)(nil)

// SearchMovies returns the requested page plus length-aware pagination
// metadata computed from the total match count.
func (s *movieService) SearchMovies(ctx context.Context, title string, year *int, page int) ([]domain.MovieSummary, *domain.Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * searchPageSize

	movies, total, err := s.movies.SearchMovies(ctx, title, year, searchPageSize, offset)
	if err != nil {
		return nil, nil, err
	}

	lastPage := (total + searchPageSize - 1) / searchPageSize
	p := &domain.Page{
		Total:       total,
		LastPage:    lastPage,
		PerPage:     searchPageSize,
		CurrentPage: page,
		From:        offset,
		To:          offset + len(movies),
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page < lastPage {
		next := page + 1
		p.NextPage = &next
	}
	return movies, p, nil
}

func (s *movieService) GetMovieDetails(ctx context.Context, imdbID string) (*domain.Movie, error) {
	return s.movies.FindMovieByID(ctx, imdbID)
}
