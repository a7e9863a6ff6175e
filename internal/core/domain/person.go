package domain

// Role is one credit of a person in a movie.
type Role struct {
	MovieName  string
	MovieID    string
	Category   string
	Characters []string
	ImdbRating *float64
}

// Person is an actor, director or other crew member with their filmography,
// ordered by movie id ascending.
type Person struct {
	Name      string
	BirthYear *int
	DeathYear *int
	Roles     []Role
}
