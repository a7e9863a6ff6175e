package dto

import (
	"strconv"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /user/login. The expiry overrides are
// declared as any: clients historically sent them as numbers or numeric
// strings, and anything non-numeric silently falls back to the configured
// default lifetime.
type LoginRequest struct {
	Email                   string `json:"email" binding:"required"`
	Password                string `json:"password" binding:"required"`
	BearerExpiresInSeconds  any    `json:"bearerExpiresInSeconds,omitempty"`
	RefreshExpiresInSeconds any    `json:"refreshExpiresInSeconds,omitempty"`
}

// BearerTTL returns the requested bearer lifetime, or nil when absent,
// non-numeric or not positive.
func (r LoginRequest) BearerTTL() *int {
	return coerceSeconds(r.BearerExpiresInSeconds)
}

// RefreshTTL returns the requested refresh lifetime, or nil when absent,
// non-numeric or not positive.
func (r LoginRequest) RefreshTTL() *int {
	return coerceSeconds(r.RefreshExpiresInSeconds)
}

func coerceSeconds(v any) *int {
	switch n := v.(type) {
	case float64:
		if i := int(n); i > 0 {
			return &i
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil && i > 0 {
			return &i
		}
	}
	return nil
}

// RefreshRequest is the body of POST /user/refresh and POST /user/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// IssuedTokenResponse is one half of a token pair response.
type IssuedTokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// TokenPairResponse is the body of a successful login or refresh.
type TokenPairResponse struct {
	BearerToken  IssuedTokenResponse `json:"bearerToken"`
	RefreshToken IssuedTokenResponse `json:"refreshToken"`
}

// ToTokenPairResponse converts a domain token pair to its response DTO.
func ToTokenPairResponse(p *domain.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		BearerToken: IssuedTokenResponse{
			Token:     p.Bearer.Token,
			TokenType: p.Bearer.TokenType,
			ExpiresIn: p.Bearer.ExpiresIn,
		},
		RefreshToken: IssuedTokenResponse{
			Token:     p.Refresh.Token,
			TokenType: p.Refresh.TokenType,
			ExpiresIn: p.Refresh.ExpiresIn,
		},
	}
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the generic {error, message} envelope used for both
// failures and message-only successes such as logout.
type MessageResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
