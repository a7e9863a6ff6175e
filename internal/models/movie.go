package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// MovieSummaryRow is one row of the basics table as selected by search.
type MovieSummaryRow struct {
	Title                string         `db:"primary_title"`
	Year                 int            `db:"year"`
	Tconst               string         `db:"tconst"`
	ImdbRating           sql.NullString `db:"imdb_rating"`
	RottenTomatoesRating sql.NullInt32  `db:"rottentomatoes_rating"`
	MetacriticRating     sql.NullInt32  `db:"metacritic_rating"`
	Rated                sql.NullString `db:"rated"`
}

// MovieDetailRow is one row of the basics/principals/ratings join used by the
// detail lookup. One movie fans out to a row per (principal, rating source)
// combination; the repository collapses them.
type MovieDetailRow struct {
	Title       string              `db:"primary_title"`
	Year        int                 `db:"year"`
	Runtime     sql.NullInt32       `db:"runtime_minutes"`
	Genres      sql.NullString      `db:"genres"`
	Country     sql.NullString      `db:"country"`
	PrincipalID sql.NullString      `db:"nconst"`
	Category    sql.NullString      `db:"category"`
	Name        sql.NullString      `db:"name"`
	Characters  sql.NullString      `db:"characters"`
	Source      sql.NullString      `db:"source"`
	Value       decimal.NullDecimal `db:"value"`
	Boxoffice   sql.NullInt64       `db:"boxoffice"`
	Poster      sql.NullString      `db:"poster"`
	Plot        sql.NullString      `db:"plot"`
}
