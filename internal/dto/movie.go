package dto

import "github.com/cinescope/cinescope_backend/internal/core/domain"

// MovieSearchParams are the query parameters of GET /movies/search. All three
// are optional; year and page must be numeric when supplied, which the
// handler checks before binding so the error messages stay specific.
type MovieSearchParams struct {
	Title string `form:"title"`
	Year  string `form:"year"`
	Page  string `form:"page"`
}

// MovieSummaryResponse is one row of a search result.
type MovieSummaryResponse struct {
	Title                string   `json:"title"`
	Year                 int      `json:"year"`
	ImdbID               string   `json:"imdbID"`
	ImdbRating           *float64 `json:"imdbRating"`
	RottenTomatoesRating *int     `json:"rottenTomatoesRating"`
	MetacriticRating     *int     `json:"metacriticRating"`
	Classification       *string  `json:"classification"`
}

// PaginationResponse is length-aware pagination metadata.
type PaginationResponse struct {
	Total       int  `json:"total"`
	LastPage    int  `json:"lastPage"`
	PrevPage    *int `json:"prevPage"`
	NextPage    *int `json:"nextPage"`
	PerPage     int  `json:"perPage"`
	CurrentPage int  `json:"currentPage"`
	From        int  `json:"from"`
	To          int  `json:"to"`
}

// MovieSearchResponse is the body of GET /movies/search.
type MovieSearchResponse struct {
	Data       []MovieSummaryResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// ToMovieSearchResponse converts one page of search results to its DTO.
func ToMovieSearchResponse(movies []domain.MovieSummary, page *domain.Page) MovieSearchResponse {
	data := make([]MovieSummaryResponse, len(movies))
	for i, m := range movies {
		data[i] = MovieSummaryResponse{
			Title:                m.Title,
			Year:                 m.Year,
			ImdbID:               m.ImdbID,
			ImdbRating:           m.ImdbRating,
			RottenTomatoesRating: m.RottenTomatoesRating,
			MetacriticRating:     m.MetacriticRating,
			Classification:       m.Classification,
		}
	}
	return MovieSearchResponse{
		Data: data,
		Pagination: PaginationResponse{
			Total:       page.Total,
			LastPage:    page.LastPage,
			PrevPage:    page.PrevPage,
			NextPage:    page.NextPage,
			PerPage:     page.PerPage,
			CurrentPage: page.CurrentPage,
			From:        page.From,
			To:          page.To,
		},
	}
}

// PrincipalResponse is one cast or crew member in a movie detail response.
type PrincipalResponse struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Name       string   `json:"name"`
	Characters []string `json:"characters"`
}

// RatingResponse is one review-source score in a movie detail response.
type RatingResponse struct {
	Source string   `json:"source"`
	Value  *float64 `json:"value"`
}

// MovieDetailsResponse is the body of GET /movies/data/:imdbID.
type MovieDetailsResponse struct {
	Title      string              `json:"title"`
	Year       int                 `json:"year"`
	Runtime    int                 `json:"runtime"`
	Genres     []string            `json:"genres"`
	Country    string              `json:"country"`
	Principals []PrincipalResponse `json:"principals"`
	Ratings    []RatingResponse    `json:"ratings"`
	Boxoffice  *int64              `json:"boxoffice"`
	Poster     *string             `json:"poster"`
	Plot       *string             `json:"plot"`
}

// ToMovieDetailsResponse converts a domain movie to its detail DTO.
func ToMovieDetailsResponse(m *domain.Movie) MovieDetailsResponse {
	principals := make([]PrincipalResponse, len(m.Principals))
	for i, p := range m.Principals {
		principals[i] = PrincipalResponse{
			ID:         p.ID,
			Category:   p.Category,
			Name:       p.Name,
			Characters: p.Characters,
		}
	}
	ratings := make([]RatingResponse, len(m.Ratings))
	for i, r := range m.Ratings {
		v, _ := r.Value.Float64()
		value := v
		ratings[i] = RatingResponse{Source: r.Source, Value: &value}
	}
	return MovieDetailsResponse{
		Title:      m.Title,
		Year:       m.Year,
		Runtime:    m.Runtime,
		Genres:     m.Genres,
		Country:    m.Country,
		Principals: principals,
		Ratings:    ratings,
		Boxoffice:  m.Boxoffice,
		Poster:     m.Poster,
		Plot:       m.Plot,
	}
}
