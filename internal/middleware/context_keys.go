package middleware

import "github.com/gin-gonic/gin"

// claimsEmailKey is the key used to store the authenticated user's email in
// the Gin context once a bearer token has been verified.
const claimsEmailKey = string(contextKey("claimsEmail"))

// GetClaimsEmailFromContext retrieves the bearer claims email from the Gin
// context. The boolean is false for anonymous requests (possible on routes
// using OptionalBearerAuth).
func GetClaimsEmailFromContext(c *gin.Context) (string, bool) {
	emailVal, exists := c.Get(claimsEmailKey)
	if !exists {
		return "", false
	}
	email, ok := emailVal.(string)
	if !ok {
		return "", false
	}
	return email, true
}
