package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the wire shape of both token kinds. Expiry lives in the
// custom bearerExp/refreshExp fields as absolute unix-seconds; the standard
// exp claim is not used, so the jwt library only checks the signature and the
// service checks expiry itself.
type tokenClaims struct {
	Email      string  `json:"email"`
	BearerExp  float64 `json:"bearerExp,omitempty"`
	RefreshExp float64 `json:"refreshExp,omitempty"`
	jwt.RegisteredClaims
}

// tokenService issues, verifies and persists bearer/refresh token pairs. The
// signing secret is injected at construction; there is no ambient global.
type tokenService struct {
	secret   []byte
	sessions portsrepo.SessionWriter
}

// NewTokenService creates a new tokenService.
func NewTokenService(cfg *config.Config, sessions portsrepo.SessionWriter) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:   []byte(cfg.JWTSecret),
		sessions: sessions,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssuePair mints both tokens with expiries of now + ttl and stores the
// refresh token on the user row. The overwrite is what retires the previously
// issued refresh token; nothing else tracks sessions.
func (s *tokenService) IssuePair(ctx context.Context, email string, bearerTTL, refreshTTL int) (*domain.TokenPair, error) {
	now := time.Now().Unix()

	bearerToken, err := s.sign(tokenClaims{Email: email, BearerExp: float64(now + int64(bearerTTL))})
	if err != nil {
		return nil, fmt.Errorf("failed to sign bearer token: %w", err)
	}
	refreshToken, err := s.sign(tokenClaims{Email: email, RefreshExp: float64(now + int64(refreshTTL))})
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.sessions.UpdateRefreshToken(ctx, email, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		Bearer:  domain.IssuedToken{Token: bearerToken, TokenType: "Bearer", ExpiresIn: bearerTTL},
		Refresh: domain.IssuedToken{Token: refreshToken, TokenType: "Refresh", ExpiresIn: refreshTTL},
	}, nil
}

// VerifyBearer checks signature and bearer expiry. A verified token without a
// bearerExp claim is rejected as malformed: refresh tokens are not usable as
// bearer tokens.
func (s *tokenService) VerifyBearer(tokenString string) (*domain.TokenClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.BearerExp == 0 {
		return nil, apperrors.ErrTokenMalformed
	}
	if unixNow() > claims.BearerExp {
		return nil, apperrors.ErrTokenExpired
	}
	return toDomainClaims(claims), nil
}

// VerifyRefresh checks signature, presence of the refreshExp claim and
// refresh expiry. An absent claim is a distinct invalid-token condition, not
// an expiry.
func (s *tokenService) VerifyRefresh(tokenString string) (*domain.TokenClaims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrRefreshTokenRequired
	}
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.RefreshExp == 0 {
		return nil, apperrors.ErrRefreshClaimMissing
	}
	if unixNow() > claims.RefreshExp {
		return nil, apperrors.ErrTokenExpired
	}
	return toDomainClaims(claims), nil
}

func (s *tokenService) sign(claims tokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parse verifies the signature and decodes the claims. Every parse failure is
// reported as a malformed token; expiry is checked by the callers against the
// custom claims.
func (s *tokenService) parse(tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrTokenMalformed
	}
	return claims, nil
}

// unixNow is the fractional wall clock in unix-seconds. Comparisons against
// the integral expiry claims use strict >, so a token checked at exactly its
// expiry second still counts as valid.
func unixNow() float64 {
	return float64(time.Now().UnixMilli()) / 1000.0
}

func toDomainClaims(c *tokenClaims) *domain.TokenClaims {
	return &domain.TokenClaims{
		Email:      c.Email,
		BearerExp:  c.BearerExp,
		RefreshExp: c.RefreshExp,
	}
}
