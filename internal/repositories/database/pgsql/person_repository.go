package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	"github.com/cinescope/cinescope_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPersonRepository struct {
	db *pgxpool.Pool
}

func newPgxPersonRepository(db *pgxpool.Pool) portsrepo.PersonRepository {
	return &PgxPersonRepository{db: db}
}

var _ portsrepo.PersonRepository = (*PgxPersonRepository)(nil)

// FindPersonByID selects the names/principals/basics join and collapses one
// row per credit into the person's filmography, ordered by movie id.
func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `
        SELECT n.primary_name, n.birth_year, n.death_year,
               p.category, p.characters,
               b.original_title, b.tconst, b.imdb_rating
        FROM names n
        INNER JOIN principals p ON n.nconst = p.nconst
        INNER JOIN basics b ON p.tconst = b.tconst
        WHERE n.nconst = $1
        ORDER BY b.tconst ASC;
    `
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query person %s: %w", id, err)
	}
	defer rows.Close()

	var person *domain.Person
	for rows.Next() {
		var row models.PersonRow
		if err := rows.Scan(
			&row.PrimaryName, &row.BirthYear, &row.DeathYear,
			&row.Category, &row.Characters,
			&row.MovieName, &row.MovieID, &row.ImdbRating,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}

		if person == nil {
			person = &domain.Person{
				Name:  row.PrimaryName,
				Roles: []domain.Role{},
			}
			if row.BirthYear.Valid {
				v := int(row.BirthYear.Int32)
				person.BirthYear = &v
			}
			if row.DeathYear.Valid {
				v := int(row.DeathYear.Int32)
				person.DeathYear = &v
			}
		}

		role := domain.Role{
			MovieName:  row.MovieName,
			MovieID:    row.MovieID,
			Category:   row.Category.String,
			Characters: parseCharacters(row.Characters.String),
		}
		if row.ImdbRating.Valid {
			if v, err := strconv.ParseFloat(row.ImdbRating.String, 64); err == nil {
				role.ImdbRating = &v
			}
		}
		person.Roles = append(person.Roles, role)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", rows.Err())
	}

	if person == nil {
		return nil, apperrors.ErrNotFound
	}
	return person, nil
}
