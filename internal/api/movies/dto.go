package moviesapi

import "movie-catalog/internal/domain/movies"

// ---------- requests

type SaveMovieRequest struct {
	movies.Input
	SaveTo string `json:"save_to"` // "db" | "json" | "xml"
}

type UpdateMovieRequest struct {
	movies.Input
}

// ---------- responses

type ListResponse struct {
	Source string            `json:"source"`
	Query  string            `json:"query"`
	Movies []movies.Document `json:"movies"`
}

type QuickSearchResponse struct {
	Results []movies.Summary `json:"results"`
}
