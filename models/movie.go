package models

import "time"

type Movie struct {
	ID          int       `json:"id"` // TMDB movie id, assigned at creation
	Title       string    `json:"title"`
	Year        string    `json:"year"` // release date string as returned by TMDB
	Description string    `json:"description"`
	Rating      *float64  `json:"rating,omitempty"`  // nil until reviewed
	Ranking     *int      `json:"ranking,omitempty"` // derived, rewritten on every listing
	Review      *string   `json:"review,omitempty"`
	ImgURL      string    `json:"img_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
