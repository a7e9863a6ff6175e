package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	"github.com/cinescope/cinescope_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName.String,
		LastName:     m.LastName.String,
		DOB:          m.DOB.String,
		Address:      m.Address.String,
		RefreshToken: m.RefreshToken.String,
	}
}

// CreateUser inserts a new account. The unique constraint on email is the
// duplicate check: ON CONFLICT DO NOTHING plus a rows-affected test makes the
// insert a single atomic statement with no read-then-write window.
func (r *PgxUserRepository) CreateUser(ctx context.Context, email string, passwordHash string) error {
	query := `
        INSERT INTO users (email, hash)
        VALUES ($1, $2)
        ON CONFLICT (email) DO NOTHING;
    `
	cmdTag, err := r.db.Exec(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT email, hash, first_name, last_name, dob, address, refresh_token
		FROM users
		WHERE email = $1;
	`
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.FirstName,
		&modelUser.LastName,
		&modelUser.DOB,
		&modelUser.Address,
		&modelUser.RefreshToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

// UpdateRefreshToken overwrites the stored refresh token. Last-write-wins on
// this single column is the whole session model: whichever login or refresh
// writes last holds the only valid refresh token.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, email string, refreshToken string) error {
	query := `
        UPDATE users
        SET refresh_token = $1
        WHERE email = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshToken, email)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ClearRefreshTokenByValue nulls the refresh token of whichever user holds
// the supplied value. A zero rows-affected result means the token was never
// issued, already invalidated, or superseded; no record is modified.
func (r *PgxUserRepository) ClearRefreshTokenByValue(ctx context.Context, refreshToken string) error {
	query := `
        UPDATE users
        SET refresh_token = NULL
        WHERE refresh_token = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, email string, firstName, lastName, dob, address string) (*domain.User, error) {
	query := `
        UPDATE users
        SET first_name = $1, last_name = $2, dob = $3, address = $4
        WHERE email = $5
        RETURNING email, hash, first_name, last_name, dob, address, refresh_token;
    `
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, firstName, lastName, dob, address, email).Scan(
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.FirstName,
		&modelUser.LastName,
		&modelUser.DOB,
		&modelUser.Address,
		&modelUser.RefreshToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile for %s: %w", email, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}
