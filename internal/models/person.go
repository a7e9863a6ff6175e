package models

import "database/sql"

// PersonRow is one row of the names/principals/basics join used by the person
// lookup; one person fans out to a row per credited movie.
type PersonRow struct {
	PrimaryName string         `db:"primary_name"`
	BirthYear   sql.NullInt32  `db:"birth_year"`
	DeathYear   sql.NullInt32  `db:"death_year"`
	Category    sql.NullString `db:"category"`
	Characters  sql.NullString `db:"characters"`
	MovieName   string         `db:"original_title"`
	MovieID     string         `db:"tconst"`
	ImdbRating  sql.NullString `db:"imdb_rating"`
}
