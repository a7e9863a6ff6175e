package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	msgAuthHeaderMissing = "Authorization header ('Bearer token') not found"
	msgTokenInvalid      = "Invalid JWT token"
	msgTokenExpired      = "JWT token has expired"
)

// BearerAuth creates a Gin middleware handler that requires a valid bearer
// token and stores its email claim in the context.
func BearerAuth(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tokens) {
			return
		}
		c.Next()
	}
}

// OptionalBearerAuth lets requests without an Authorization header pass
// through anonymously, but still rejects a header that fails verification.
// Used by the profile read route, whose response narrows for non-owners.
func OptionalBearerAuth(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		if !authenticate(c, tokens) {
			return
		}
		c.Next()
	}
}

// authenticate verifies the bearer token and populates the context. It aborts
// the request and returns false on any failure.
func authenticate(c *gin.Context, tokens portssvc.TokenSvcFacade) bool {
	logger := GetLoggerFromCtx(c.Request.Context())

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		logger.Warn("Authorization header missing or not Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Error: true, Message: msgAuthHeaderMissing})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := tokens.VerifyBearer(tokenString)
	if err != nil {
		msg := msgTokenInvalid
		if errors.Is(err, apperrors.ErrTokenExpired) {
			msg = msgTokenExpired
		}
		logger.Warn("Bearer token rejected", slog.String("reason", err.Error()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Error: true, Message: msg})
		return false
	}

	c.Set(claimsEmailKey, claims.Email)
	return true
}
