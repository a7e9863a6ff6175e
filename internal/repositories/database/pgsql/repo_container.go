package pgsql

import (
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the pgsql-backed repository set.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:   newPgxUserRepository(dbPool),
		MovieRepo:  newPgxMovieRepository(dbPool),
		PersonRepo: newPgxPersonRepository(dbPool),
	}
}
