package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MovieHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockMovieService *MockMovieService
}

func (suite *MovieHandlerTestSuite) SetupTest() {
	suite.mockMovieService = new(MockMovieService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Movie: suite.mockMovieService,
	})
}

func (suite *MovieHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func emptyPage() *domain.Page {
	return &domain.Page{Total: 0, LastPage: 0, PerPage: 100, CurrentPage: 1}
}

// --- Search Tests ---

func (suite *MovieHandlerTestSuite) TestSearchMovies_Defaults() {
	suite.mockMovieService.On("SearchMovies", mock.Anything, "", (*int)(nil), 1).Return([]domain.MovieSummary{}, emptyPage(), nil).Once()

	w := suite.get("/movies/search")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MovieSearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Data)
	suite.Equal(100, resp.Pagination.PerPage)
	suite.mockMovieService.AssertExpectations(suite.T())
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_TitleYearAndPage() {
	rating := 8.3
	rt := 96
	classification := "PG"
	movies := []domain.MovieSummary{{
		Title:                "The Dog",
		Year:                 2010,
		ImdbID:               "tt1285016",
		ImdbRating:           &rating,
		RottenTomatoesRating: &rt,
		Classification:       &classification,
	}}
	next := 3
	prev := 1
	page := &domain.Page{Total: 250, LastPage: 3, PrevPage: &prev, NextPage: &next, PerPage: 100, CurrentPage: 2, From: 100, To: 101}

	suite.mockMovieService.On("SearchMovies", mock.Anything, "dog",
		mock.MatchedBy(func(year *int) bool { return year != nil && *year == 2010 }), 2,
	).Return(movies, page, nil).Once()

	w := suite.get("/movies/search?title=dog&year=2010&page=2")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MovieSearchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Data, 1)
	suite.Equal("The Dog", resp.Data[0].Title)
	suite.Require().NotNil(resp.Data[0].ImdbRating)
	suite.Equal(8.3, *resp.Data[0].ImdbRating)
	// metacritic is absent for this title and must render as null, not 0
	suite.Nil(resp.Data[0].MetacriticRating)
	suite.Equal(2, resp.Pagination.CurrentPage)
	suite.Require().NotNil(resp.Pagination.NextPage)
	suite.Equal(3, *resp.Pagination.NextPage)
	suite.mockMovieService.AssertExpectations(suite.T())
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_NonNumericYear() {
	w := suite.get("/movies/search?year=twenty")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid year format. Format must be yyyy.", decodeMessage(w).Message)
	suite.mockMovieService.AssertNotCalled(suite.T(), "SearchMovies")
}

func (suite *MovieHandlerTestSuite) TestSearchMovies_NonNumericPage() {
	w := suite.get("/movies/search?page=first")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid page format. page must be a number.", decodeMessage(w).Message)
	suite.mockMovieService.AssertNotCalled(suite.T(), "SearchMovies")
}

// --- Details Tests ---

func (suite *MovieHandlerTestSuite) TestGetMovieData_Success() {
	movie := &domain.Movie{
		Title:   "The Dog",
		Year:    2010,
		Runtime: 101,
		Genres:  []string{"Comedy", "Drama"},
		Country: "Australia",
		Principals: []domain.Principal{
			{ID: "nm0000095", Category: "actor", Name: "Some Actor", Characters: []string{"Max"}},
		},
		Ratings: []domain.Rating{
			{Source: "Internet Movie Database", Value: decimal.NewFromFloat(8.3)},
		},
	}
	suite.mockMovieService.On("GetMovieDetails", mock.Anything, "tt1285016").Return(movie, nil).Once()

	w := suite.get("/movies/data/tt1285016")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MovieDetailsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("The Dog", resp.Title)
	suite.Equal([]string{"Comedy", "Drama"}, resp.Genres)
	suite.Require().Len(resp.Principals, 1)
	suite.Equal([]string{"Max"}, resp.Principals[0].Characters)
	suite.Require().Len(resp.Ratings, 1)
	suite.Require().NotNil(resp.Ratings[0].Value)
	suite.Equal(8.3, *resp.Ratings[0].Value)
	suite.mockMovieService.AssertExpectations(suite.T())
}

func (suite *MovieHandlerTestSuite) TestGetMovieData_NotFound() {
	suite.mockMovieService.On("GetMovieDetails", mock.Anything, "tt9999999").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/movies/data/tt9999999")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("No record exists of a movie with this ID", decodeMessage(w).Message)
	suite.mockMovieService.AssertExpectations(suite.T())
}

func (suite *MovieHandlerTestSuite) TestGetMovieData_QueryParametersRejected() {
	w := suite.get("/movies/data/tt1285016?year=2010&plot=full")

	suite.Equal(http.StatusBadRequest, w.Code)
	// keys are reported sorted
	suite.Equal("Invalid query parameters: plot, year. Query parameters are not permitted.", decodeMessage(w).Message)
	suite.mockMovieService.AssertNotCalled(suite.T(), "GetMovieDetails")
}

// --- Run Test Suite ---
func TestMovieHandler(t *testing.T) {
	suite.Run(t, new(MovieHandlerTestSuite))
}
