package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/cinescope/cinescope_backend/internal/middleware"
	"github.com/cinescope/cinescope_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	msgUserNotFound      = "User not found"
	msgProfileIncomplete = "Request body incomplete: firstName, lastName, dob and address are required."
	msgProfileNotString  = "Request body invalid: firstName, lastName and address must be strings only."
	msgDOBNotRealDate    = "Invalid input: dob must be a real date in format YYYY-MM-DD."
	msgDOBInFuture       = "Invalid input: dob must be a date in the past."
)

// userHandler handles the profile routes.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes. The profile read uses
// optional auth because its response merely narrows for non-owners; the write
// requires a verified bearer token.
func registerUserRoutes(r *gin.Engine, services *portssvc.ServiceContainer, limitMiddleware gin.HandlerFunc) {
	h := newUserHandler(services.User)

	user := r.Group("/user")
	registerAuthRoutes(user, services.Auth, limitMiddleware)
	user.GET("/:email/profile", middleware.OptionalBearerAuth(services.Token), h.getProfile)
	user.PUT("/:email/profile", middleware.BearerAuth(services.Token), h.updateProfile)
}

// getProfile godoc
// @Summary Get a user's profile
// @Description Returns the profile. dob and address are only included when the bearer token belongs to the profile owner.
// @Tags user
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} dto.FullProfileResponse
// @Failure 401 {object} dto.MessageResponse "Invalid bearer token supplied"
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /user/{email}/profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Param("email")

	user, err := h.userService.GetProfile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Error: true, Message: msgUserNotFound})
			return
		}
		logger.Error("Failed to get profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	claimsEmail, authenticated := middleware.GetClaimsEmailFromContext(c)
	if authenticated && claimsEmail == email {
		c.JSON(http.StatusOK, dto.ToFullProfileResponse(user))
		return
	}
	c.JSON(http.StatusOK, dto.ToPartialProfileResponse(user))
}

// updateProfile godoc
// @Summary Update a user's profile
// @Description Replaces firstName, lastName, dob and address. Only the profile owner may write.
// @Tags user
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param profile body dto.UpdateProfilePayload true "Profile fields"
// @Success 200 {object} dto.FullProfileResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /user/{email}/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Param("email")

	// Unknown accounts 404 before the ownership check.
	if _, err := h.userService.GetProfile(c.Request.Context(), email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Error: true, Message: msgUserNotFound})
			return
		}
		logger.Error("Failed to look up profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	claimsEmail, _ := middleware.GetClaimsEmailFromContext(c)
	if claimsEmail != email {
		c.JSON(http.StatusForbidden, dto.MessageResponse{Error: true, Message: "Forbidden"})
		return
	}

	var payload dto.UpdateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msgProfileIncomplete})
		return
	}

	req, errMsg := validateProfilePayload(payload)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: errMsg})
		return
	}

	updated, err := h.userService.UpdateProfile(c.Request.Context(), email, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Error: true, Message: msgUserNotFound})
			return
		}
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToFullProfileResponse(updated))
}

// validateProfilePayload checks presence, types and the dob rules. Missing
// fields and wrongly-typed fields produce distinct messages, so the checks
// run in two passes. An empty string counts as missing, not as a bad type.
func validateProfilePayload(p dto.UpdateProfilePayload) (dto.UpdateProfileRequest, string) {
	fields := []any{p.FirstName, p.LastName, p.DOB, p.Address}
	for _, f := range fields {
		if f == nil {
			return dto.UpdateProfileRequest{}, msgProfileIncomplete
		}
		if s, ok := f.(string); ok && s == "" {
			return dto.UpdateProfileRequest{}, msgProfileIncomplete
		}
	}

	strs := make([]string, len(fields))
	for i, f := range fields {
		s, ok := f.(string)
		if !ok {
			return dto.UpdateProfileRequest{}, msgProfileNotString
		}
		strs[i] = s
	}

	req := dto.UpdateProfileRequest{
		FirstName: strs[0],
		LastName:  strs[1],
		DOB:       strs[2],
		Address:   strs[3],
	}

	switch err := utils.ValidateDOB(req.DOB); {
	case errors.Is(err, utils.ErrInvalidDOB):
		return dto.UpdateProfileRequest{}, msgDOBNotRealDate
	case errors.Is(err, utils.ErrFutureDOB):
		return dto.UpdateProfileRequest{}, msgDOBInFuture
	}

	return req, ""
}
