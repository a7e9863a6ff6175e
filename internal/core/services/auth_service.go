package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	portssvc "github.com/cinescope/cinescope_backend/internal/core/ports/services"
	"github.com/cinescope/cinescope_backend/internal/platform/config"
	"github.com/cinescope/cinescope_backend/internal/utils"
)

// authService implements registration, login, refresh and logout on top of
// the user repository and the token service.
type authService struct {
	users             portsrepo.UserRepositoryFacade
	tokens            portssvc.TokenSvcFacade
	defaultBearerTTL  int
	defaultRefreshTTL int
}

// NewAuthService creates a new authService.
func NewAuthService(cfg *config.Config, users portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		users:             users,
		tokens:            tokens,
		defaultBearerTTL:  cfg.BearerExpirySeconds,
		defaultRefreshTTL: cfg.RefreshExpirySeconds,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register hashes the password and performs a single conditional insert. The
// unique constraint on email is the only duplicate check; there is no
// read-then-write race window.
func (s *authService) Register(ctx context.Context, email, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.users.CreateUser(ctx, email, hash)
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password are deliberately indistinguishable to prevent account
// enumeration.
func (s *authService) Login(ctx context.Context, email, password string, bearerTTL, refreshTTL *int) (*domain.TokenPair, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	bTTL := s.defaultBearerTTL
	if bearerTTL != nil {
		bTTL = *bearerTTL
	}
	rTTL := s.defaultRefreshTTL
	if refreshTTL != nil {
		rTTL = *refreshTTL
	}
	return s.tokens.IssuePair(ctx, email, bTTL, rTTL)
}

// Refresh verifies the token and additionally requires it to match the value
// stored on the user row. Without the cross-check a superseded refresh token
// would keep working until its own expiry, because the signature check alone
// cannot know a newer one was issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindUserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTokenMalformed
		}
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		// Superseded by a newer login/refresh, or cleared by logout.
		return nil, apperrors.ErrTokenMalformed
	}

	return s.tokens.IssuePair(ctx, claims.Email, s.defaultBearerTTL, s.defaultRefreshTTL)
}

// Logout invalidates whichever session currently holds the supplied refresh
// token. The clear is a single conditional update keyed by the token value,
// so a no-match outcome leaves every record untouched.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.tokens.VerifyRefresh(refreshToken); err != nil {
		return err
	}
	return s.users.ClearRefreshTokenByValue(ctx, refreshToken)
}
