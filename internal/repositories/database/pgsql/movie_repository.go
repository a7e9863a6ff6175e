package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cinescope/cinescope_backend/internal/apperrors"
	"github.com/cinescope/cinescope_backend/internal/core/domain"
	portsrepo "github.com/cinescope/cinescope_backend/internal/core/ports/repositories"
	"github.com/cinescope/cinescope_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMovieRepository struct {
	db *pgxpool.Pool
}

func newPgxMovieRepository(db *pgxpool.Pool) portsrepo.MovieRepository {
	return &PgxMovieRepository{db: db}
}

var _ portsrepo.MovieRepository = (*PgxMovieRepository)(nil)

// searchFilters builds the WHERE clause shared by the count and page queries.
func searchFilters(title string, year *int) (string, []any) {
	clauses := []string{}
	args := []any{}
	if title != "" {
		args = append(args, "%"+title+"%")
		clauses = append(clauses, fmt.Sprintf("primary_title ILIKE $%d", len(args)))
	}
	if year != nil {
		args = append(args, *year)
		clauses = append(clauses, fmt.Sprintf("year = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PgxMovieRepository) SearchMovies(ctx context.Context, title string, year *int, limit int, offset int) ([]domain.MovieSummary, int, error) {
	where, args := searchFilters(title, year)

	var total int
	countQuery := "SELECT COUNT(*) FROM basics" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	pageQuery := fmt.Sprintf(`
        SELECT primary_title, year, tconst, imdb_rating,
               CAST(rottentomatoes_rating AS INTEGER),
               CAST(metacritic_rating AS INTEGER),
               rated
        FROM basics%s
        ORDER BY tconst ASC
        LIMIT $%d OFFSET $%d;
    `, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	movies := []domain.MovieSummary{}
	for rows.Next() {
		var m models.MovieSummaryRow
		if err := rows.Scan(&m.Title, &m.Year, &m.Tconst, &m.ImdbRating, &m.RottenTomatoesRating, &m.MetacriticRating, &m.Rated); err != nil {
			return nil, 0, fmt.Errorf("failed to scan movie row: %w", err)
		}
		movies = append(movies, toDomainMovieSummary(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating movie rows: %w", rows.Err())
	}

	return movies, total, nil
}

func toDomainMovieSummary(m models.MovieSummaryRow) domain.MovieSummary {
	s := domain.MovieSummary{
		Title:  m.Title,
		Year:   m.Year,
		ImdbID: m.Tconst,
	}
	if m.ImdbRating.Valid {
		if v, err := strconv.ParseFloat(m.ImdbRating.String, 64); err == nil {
			s.ImdbRating = &v
		}
	}
	if m.RottenTomatoesRating.Valid {
		v := int(m.RottenTomatoesRating.Int32)
		s.RottenTomatoesRating = &v
	}
	if m.MetacriticRating.Valid {
		v := int(m.MetacriticRating.Int32)
		s.MetacriticRating = &v
	}
	if m.Rated.Valid {
		s.Classification = &m.Rated.String
	}
	return s
}

// FindMovieByID selects the basics/principals/ratings join and collapses the
// fanned-out rows into one movie: each principal and each rating source is
// taken once, in row order.
func (r *PgxMovieRepository) FindMovieByID(ctx context.Context, imdbID string) (*domain.Movie, error) {
	query := `
        SELECT b.primary_title, b.year, b.runtime_minutes, b.genres, b.country,
               p.nconst, p.category, p.name, p.characters,
               r.source, CAST(r.value AS DECIMAL(3,1)),
               b.boxoffice, b.poster, b.plot
        FROM basics b
        INNER JOIN principals p ON b.tconst = p.tconst
        LEFT JOIN ratings r ON b.tconst = r.tconst
        WHERE b.tconst = $1;
    `
	rows, err := r.db.Query(ctx, query, imdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie %s: %w", imdbID, err)
	}
	defer rows.Close()

	var movie *domain.Movie
	seenPrincipals := map[string]bool{}
	seenSources := map[string]bool{}

	for rows.Next() {
		var row models.MovieDetailRow
		if err := rows.Scan(
			&row.Title, &row.Year, &row.Runtime, &row.Genres, &row.Country,
			&row.PrincipalID, &row.Category, &row.Name, &row.Characters,
			&row.Source, &row.Value,
			&row.Boxoffice, &row.Poster, &row.Plot,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movie detail row: %w", err)
		}

		if movie == nil {
			movie = &domain.Movie{
				Title:   row.Title,
				Year:    row.Year,
				Runtime: int(row.Runtime.Int32),
				Country: row.Country.String,
			}
			if row.Genres.Valid && row.Genres.String != "" {
				movie.Genres = strings.Split(row.Genres.String, ",")
			} else {
				movie.Genres = []string{}
			}
			if row.Boxoffice.Valid {
				v := row.Boxoffice.Int64
				movie.Boxoffice = &v
			}
			if row.Poster.Valid {
				movie.Poster = &row.Poster.String
			}
			if row.Plot.Valid {
				movie.Plot = &row.Plot.String
			}
			movie.Principals = []domain.Principal{}
			movie.Ratings = []domain.Rating{}
		}

		if row.PrincipalID.Valid && !seenPrincipals[row.PrincipalID.String] {
			seenPrincipals[row.PrincipalID.String] = true
			movie.Principals = append(movie.Principals, domain.Principal{
				ID:         row.PrincipalID.String,
				Name:       row.Name.String,
				Category:   row.Category.String,
				Characters: parseCharacters(row.Characters.String),
			})
		}
		if row.Source.Valid && row.Value.Valid && !seenSources[row.Source.String] {
			seenSources[row.Source.String] = true
			movie.Ratings = append(movie.Ratings, domain.Rating{
				Source: row.Source.String,
				Value:  row.Value.Decimal,
			})
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movie detail rows: %w", rows.Err())
	}

	if movie == nil {
		return nil, apperrors.ErrNotFound
	}
	return movie, nil
}
