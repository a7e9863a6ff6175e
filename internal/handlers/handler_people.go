package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/cinescope/cinescope_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// personHandler handles the people dataset routes.
type personHandler struct {
	personService portssvc.PersonSvcFacade
}

func newPersonHandler(ps portssvc.PersonSvcFacade) *personHandler {
	return &personHandler{personService: ps}
}

// registerPeopleRoutes registers the person lookup route, which requires a
// verified bearer token.
func registerPeopleRoutes(r *gin.Engine, personService portssvc.PersonSvcFacade, tokenService portssvc.TokenSvcFacade, limitMiddleware gin.HandlerFunc) {
	h := newPersonHandler(personService)

	people := r.Group("/people", limitMiddleware, middleware.BearerAuth(tokenService))
	people.GET("/:id", h.getPerson)
}

// getPerson godoc
// @Summary Get a person
// @Description Returns a person and their filmography. Query parameters are not permitted.
// @Tags people
// @Produce json
// @Param id path string true "IMDB name id"
// @Success 200 {object} dto.PersonResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /people/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if msg, bad := rejectQueryParameters(c); bad {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msg})
		return
	}

	person, err := h.personService.GetPersonByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Error: true, Message: "No record exists of a person with this ID"})
			return
		}
		logger.Error("Failed to get person", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}
