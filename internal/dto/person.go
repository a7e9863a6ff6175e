package dto

import "github.com/cinescope/cinescope_backend/internal/core/domain"

// RoleResponse is one credit in a person response.
type RoleResponse struct {
	MovieName  string   `json:"movieName"`
	MovieID    string   `json:"movieId"`
	Category   string   `json:"category"`
	Characters []string `json:"characters"`
	ImdbRating *float64 `json:"imdbRating"`
}

// PersonResponse is the body of GET /people/:id.
type PersonResponse struct {
	Name      string         `json:"name"`
	BirthYear *int           `json:"birthYear"`
	DeathYear *int           `json:"deathYear"`
	Roles     []RoleResponse `json:"roles"`
}

// ToPersonResponse converts a domain person to its response DTO.
func ToPersonResponse(p *domain.Person) PersonResponse {
	roles := make([]RoleResponse, len(p.Roles))
	for i, r := range p.Roles {
		roles[i] = RoleResponse{
			MovieName:  r.MovieName,
			MovieID:    r.MovieID,
			Category:   r.Category,
			Characters: r.Characters,
			ImdbRating: r.ImdbRating,
		}
	}
	return PersonResponse{
		Name:      p.Name,
		BirthYear: p.BirthYear,
		DeathYear: p.DeathYear,
		Roles:     roles,
	}
}
