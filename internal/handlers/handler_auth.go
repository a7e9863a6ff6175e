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

const (
	msgCredentialsRequired = "Request body incomplete, both email and password are required"
	msgRefreshRequired     = "Request body incomplete, refresh token required"
	msgBadCredentials      = "Incorrect email or password"
	msgTokenIsInvalid      = "JWT token is invalid"
	msgInternalError       = "Internal server error"
)

// authHandler handles registration, login, refresh and logout.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the session routes. The credential endpoints are
// rate limited; refresh and logout are not, since they already require a
// signed token.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, limitMiddleware gin.HandlerFunc) {
	h := newAuthHandler(authService)

	rg.POST("/register", limitMiddleware, h.register)
	rg.POST("/login", limitMiddleware, h.login)
	rg.POST("/refresh", h.refresh)
	rg.POST("/logout", h.logout)
}

// tokenErrorResponse maps the closed token-failure set to its status and
// user-visible message. Every member is matched explicitly; anything else is
// a server fault.
func tokenErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrRefreshTokenRequired):
		return http.StatusBadRequest, msgRefreshRequired
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, "JWT token has expired"
	case errors.Is(err, apperrors.ErrTokenMalformed), errors.Is(err, apperrors.ErrRefreshClaimMissing):
		return http.StatusUnauthorized, "Invalid JWT token"
	case errors.Is(err, apperrors.ErrAuthHeaderMissing):
		return http.StatusUnauthorized, "Authorization header ('Bearer token') not found"
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// register godoc
// @Summary Register a new account
// @Description Creates an account from an email and password.
// @Tags user
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 409 {object} dto.MessageResponse "Email already registered"
// @Router /user/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msgCredentialsRequired})
		return
	}

	if err := h.authService.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.MessageResponse{Error: true, Message: "User already exists"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{Success: true, Message: "User created"})
}

// login godoc
// @Summary Log in
// @Description Verifies credentials and returns a bearer/refresh token pair.
// @Tags user
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials with optional token lifetimes"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /user/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msgCredentialsRequired})
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.BearerTTL(), req.RefreshTTL())
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Same message for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Error: true, Message: msgBadCredentials})
			return
		}
		logger.Error("Failed to log user in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Error: true, Message: msgInternalError})
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

// refresh godoc
// @Summary Refresh a token pair
// @Description Exchanges a valid refresh token for a new bearer/refresh pair.
// @Tags user
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Current refresh token"
// @Success 200 {object} dto.TokenPairResponse
// @Failure 400 {object} dto.MessageResponse "Refresh token missing"
// @Failure 401 {object} dto.MessageResponse "Invalid or expired refresh token"
// @Router /user/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body is the same as a missing token.
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msgRefreshRequired})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		status, msg := tokenErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to refresh tokens", slog.String("error", err.Error()))
		}
		c.JSON(status, dto.MessageResponse{Error: true, Message: msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToTokenPairResponse(pair))
}

// logout godoc
// @Summary Log out
// @Description Invalidates the session holding the supplied refresh token.
// @Tags user
// @Accept json
// @Produce json
// @Param logout body dto.RefreshRequest true "Refresh token to invalidate"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Refresh token missing"
// @Failure 401 {object} dto.MessageResponse "Token matches no active session"
// @Router /user/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Error: true, Message: msgRefreshRequired})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Error: true, Message: msgTokenIsInvalid})
			return
		}
		status, msg := tokenErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to log user out", slog.String("error", err.Error()))
		}
		c.JSON(status, dto.MessageResponse{Error: true, Message: msg})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Error: false, Message: "Token successfully invalidated"})
}
