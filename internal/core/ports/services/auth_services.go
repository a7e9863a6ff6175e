package services

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// TokenSvcFacade issues and verifies the two token kinds. Verification is
// purely structural (signature and embedded expiry); session state lives on
// the user row and is checked by the auth service.
type TokenSvcFacade interface {
	// IssuePair mints a bearer/refresh token pair for the email with the
	// given lifetimes in seconds and persists the refresh token value on the
	// user row, retiring whichever token was stored before.
	IssuePair(ctx context.Context, email string, bearerTTL, refreshTTL int) (*domain.TokenPair, error)

	// VerifyBearer checks signature and bearer expiry of a token string.
	// Failures are apperrors.ErrTokenMalformed or apperrors.ErrTokenExpired.
	VerifyBearer(tokenString string) (*domain.TokenClaims, error)

	// VerifyRefresh checks signature, presence of the refresh expiry claim,
	// and refresh expiry. Failures are apperrors.ErrRefreshTokenRequired,
	// ErrTokenMalformed, ErrRefreshClaimMissing or ErrTokenExpired.
	VerifyRefresh(tokenString string) (*domain.TokenClaims, error)
}

// AuthSvcFacade is the account session surface: registration, credential
// login, token refresh and logout.
type AuthSvcFacade interface {
	// Register creates an account. Returns apperrors.ErrDuplicate when the
	// email is already taken.
	Register(ctx context.Context, email, password string) error

	// Login verifies credentials and issues a token pair. Unknown email and
	// wrong password are indistinguishable to the caller; both return
	// apperrors.ErrUnauthorized. TTLs are optional and fall back to the
	// configured defaults.
	Login(ctx context.Context, email, password string, bearerTTL, refreshTTL *int) (*domain.TokenPair, error)

	// Refresh verifies a refresh token, cross-checks it against the stored
	// value on the user row, and issues a new pair with default lifetimes.
	// A superseded or logged-out token fails with apperrors.ErrTokenMalformed
	// even when its signature and expiry still verify.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// Logout invalidates the session holding the supplied refresh token.
	// Returns apperrors.ErrNotFound when no account stores that value.
	Logout(ctx context.Context, refreshToken string) error
}
