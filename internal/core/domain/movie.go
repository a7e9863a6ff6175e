package domain

import "github.com/shopspring/decimal"

// MovieSummary is one row of a movie search result. Rating fields are nil
// when the dataset has no score from that source.
type MovieSummary struct {
	Title                string
	Year                 int
	ImdbID               string
	ImdbRating           *float64
	RottenTomatoesRating *int
	MetacriticRating     *int
	Classification       *string
}

// Principal is a cast or crew member attached to a movie.
type Principal struct {
	ID         string
	Name       string
	Category   string
	Characters []string
}

// Rating is a single review-source score for a movie. The value keeps the
// exact decimal from storage until it is rendered.
type Rating struct {
	Source string
	Value  decimal.Decimal
}

// Movie is the full detail view of a single title.
type Movie struct {
	Title      string
	Year       int
	Runtime    int
	Genres     []string
	Country    string
	Principals []Principal
	Ratings    []Rating
	Boxoffice  *int64
	Poster     *string
	Plot       *string
}

// Page describes length-aware pagination of a search result.
type Page struct {
	Total       int
	LastPage    int
	PrevPage    *int
	NextPage    *int
	PerPage     int
	CurrentPage int
	From        int
	To          int
}
