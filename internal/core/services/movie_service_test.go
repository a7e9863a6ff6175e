package services_test

import (
	"context"
	"testing"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MovieRepository ---
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) SearchMovies(ctx context.Context, title string, year *int, limit int, offset int) ([]domain.MovieSummary, int, error) {
	args := m.Called(ctx, title, year, limit, offset)
	var movies []domain.MovieSummary
	if args.Get(0) != nil {
		movies = args.Get(0).([]domain.MovieSummary)
	}
	return movies, args.Int(1), args.Error(2)
}

func (m *MockMovieRepository) FindMovieByID(ctx context.Context, imdbID string) (*domain.Movie, error) {
	args := m.Called(ctx, imdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

// --- Test Suite ---
type MovieServiceTestSuite struct {
	suite.Suite
	mockMovieRepo *MockMovieRepository
	service       portssvc.MovieSvcFacade
}

func (suite *MovieServiceTestSuite) SetupTest() {
	suite.mockMovieRepo = new(MockMovieRepository)
	suite.service = services.NewMovieService(suite.mockMovieRepo)
}

func summaries(n int) []domain.MovieSummary {
	out := make([]domain.MovieSummary, n)
	for i := range out {
		out[i] = domain.MovieSummary{Title: "A Movie", Year: 2000}
	}
	return out
}

func (suite *MovieServiceTestSuite) TestSearchMovies_FirstPage() {
	ctx := context.Background()

	suite.mockMovieRepo.On("SearchMovies", ctx, "dog", (*int)(nil), 100, 0).Return(summaries(100), 250, nil).Once()

	movies, page, err := suite.service.SearchMovies(ctx, "dog", nil, 1)

	suite.Require().NoError(err)
	suite.Len(movies, 100)
	suite.Equal(250, page.Total)
	suite.Equal(3, page.LastPage)
	suite.Equal(100, page.PerPage)
	suite.Equal(1, page.CurrentPage)
	suite.Nil(page.PrevPage)
	suite.Require().NotNil(page.NextPage)
	suite.Equal(2, *page.NextPage)
	suite.Equal(0, page.From)
	suite.Equal(100, page.To)
	suite.mockMovieRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestSearchMovies_LastPage() {
	ctx := context.Background()

	suite.mockMovieRepo.On("SearchMovies", ctx, "dog", (*int)(nil), 100, 200).Return(summaries(50), 250, nil).Once()

	movies, page, err := suite.service.SearchMovies(ctx, "dog", nil, 3)

	suite.Require().NoError(err)
	suite.Len(movies, 50)
	suite.Equal(3, page.CurrentPage)
	suite.Require().NotNil(page.PrevPage)
	suite.Equal(2, *page.PrevPage)
	suite.Nil(page.NextPage)
	suite.Equal(200, page.From)
	suite.Equal(250, page.To)
	suite.mockMovieRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestSearchMovies_NoMatches() {
	ctx := context.Background()
	year := 1877

	suite.mockMovieRepo.On("SearchMovies", ctx, "", &year, 100, 0).Return([]domain.MovieSummary{}, 0, nil).Once()

	movies, page, err := suite.service.SearchMovies(ctx, "", &year, 1)

	suite.Require().NoError(err)
	suite.Empty(movies)
	suite.Equal(0, page.Total)
	suite.Equal(0, page.LastPage)
	suite.Nil(page.PrevPage)
	suite.Nil(page.NextPage)
	suite.Equal(0, page.From)
	suite.Equal(0, page.To)
	suite.mockMovieRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestSearchMovies_PageBelowOneClamped() {
	ctx := context.Background()

	suite.mockMovieRepo.On("SearchMovies", ctx, "dog", (*int)(nil), 100, 0).Return(summaries(10), 10, nil).Once()

	_, page, err := suite.service.SearchMovies(ctx, "dog", nil, 0)

	suite.Require().NoError(err)
	suite.Equal(1, page.CurrentPage)
	suite.mockMovieRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestGetMovieDetails_NotFound() {
	ctx := context.Background()

	suite.mockMovieRepo.On("FindMovieByID", ctx, "tt0000000").Return(nil, apperrors.ErrNotFound).Once()

	movie, err := suite.service.GetMovieDetails(ctx, "tt0000000")

	suite.Require().Error(err)
	suite.Nil(movie)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMovieRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestMovieService(t *testing.T) {
	suite.Run(t, new(MovieServiceTestSuite))
}
