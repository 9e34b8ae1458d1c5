package models

// TMDBSearchResponse is the shape of /search/movie responses.
type TMDBSearchResponse struct {
	Results []TMDBResult `json:"results"`
}

// TMDBResult is one candidate from a title search.
type TMDBResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

// TMDBMovieDetails is the shape of /movie/{id} responses.
type TMDBMovieDetails struct {
	ID            int    `json:"id"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	Overview      string `json:"overview"`
	PosterPath    string `json:"poster_path"`
}
