package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/cinescope/cinescope_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movieHandler handles the movie dataset routes.
type movieHandler struct {
	movieService portssvc.MovieSvcFacade
}

func newMovieHandler(ms portssvc.MovieSvcFacade) *movieHandler {
	return &movieHandler{movieService: ms}
}

// registerMovieRoutes registers the movie lookup routes. Both are public but
// rate limited.
func registerMovieRoutes(r *gin.Engine, movieService portssvc.MovieSvcFacade, limitMiddleware gin.HandlerFunc) {
	h := newMovieHandler(movieService)

	movies := r.Group("/movies", limitMiddleware)
	movies.GET("/search", h.searchMovies)
	movies.GET("/data/:imdbID", h.getMovieData)
}

// searchMovies godoc
// @Summary Search movies
// @Description Searches titles by substring and/or exact year, 100 results per page.
// @Tags movies
// @Produce json
// @Param title query string false "Title substring"
// @Param year query string false "Exact release year (yyyy)"
// @Param page query string false "Page number" default(1)
// @Success 200 {object} dto.MovieSearchResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /movies/search [get]
func (h *movieHandler) searchMovies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MovieSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: "Invalid query parameters"})
		return
	}

	page := 1
	if params.Page != "" {
		p, err := strconv.Atoi(params.Page)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: "Invalid page format. page must be a number."})
			return
		}
		page = p
	}

	var year *int
	if params.Year != "" {
		y, err := strconv.Atoi(params.Year)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: "Invalid year format. Format must be yyyy."})
			return
		}
		year = &y
	}

	movies, pageMeta, err := h.movieService.SearchMovies(c.Request.Context(), params.Title, year, page)
	if err != nil {
		logger.Error("Failed to search movies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieSearchResponse(movies, pageMeta))
}

// getMovieData godoc
// @Summary Get movie details
// @Description Returns the full detail view of one title. Query parameters are not permitted.
// @Tags movies
// @Produce json
// @Param imdbID path string true "IMDB title id"
// @Success 200 {object} dto.MovieDetailsResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /movies/data/{imdbID} [get]
func (h *movieHandler) getMovieData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if msg, bad := rejectQueryParameters(c); bad {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msg})
		return
	}

	movie, err := h.movieService.GetMovieDetails(c.Request.Context(), c.Param("imdbID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Error: true, Message: "No record exists of a movie with this ID"})
			return
		}
		logger.Error("Failed to get movie details", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToMovieDetailsResponse(movie))
}

// rejectQueryParameters enforces the parameter-free contract of the detail
// endpoints. Keys are sorted so the message is stable.
func rejectQueryParameters(c *gin.Context) (string, bool) {
	query := c.Request.URL.Query()
	if len(query) == 0 {
		return "", false
	}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("Invalid query parameters: %s. Query parameters are not permitted.", strings.Join(keys, ", ")), true
}
