package repositories

import (
	"context"

	"github.com/cinescope/cinescope_backend/internal/core/domain"
)

// UserReader defines read operations for account data
type UserReader interface {
	// FindUserByEmail retrieves a specific user by their email address.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for account data
type UserWriter interface {
	// CreateUser inserts a new account row. The insert is conditional on the
	// unique email constraint; a duplicate returns apperrors.ErrDuplicate
	// without a prior existence check.
	CreateUser(ctx context.Context, email string, passwordHash string) error

	// UpdateProfile overwrites the profile fields of an existing account and
	// returns the updated user. Returns apperrors.ErrNotFound when the email
	// is unknown.
	UpdateProfile(ctx context.Context, email string, firstName, lastName, dob, address string) (*domain.User, error)
}

// SessionWriter defines operations on the stored refresh token, which is the
// single source of "current session" for an account.
type SessionWriter interface {
	// UpdateRefreshToken stores a newly issued refresh token against the
	// user, overwriting any previous one.
	UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error

	// ClearRefreshTokenByValue nulls the refresh token column of whichever
	// user currently holds the supplied token value. Returns
	// apperrors.ErrNotFound when no row matches, leaving every record
	// untouched.
	ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	SessionWriter
}
