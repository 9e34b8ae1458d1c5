package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Cinerank/config"
	"Cinerank/models"
)

// ErrNoPoster is returned when TMDB has no poster for a movie; building an
// image URL from an empty poster path would produce a broken link.
var ErrNoPoster = errors.New("movie has no poster image")

// TMDBClient is a thin client for the TMDB search and detail endpoints.
// It performs no retries and no caching; errors propagate to the handler.
type TMDBClient struct {
	apiKey   string
	baseURL  string
	imageURL string
	client   *http.Client
}

func NewTMDBClient(cfg *config.Config) *TMDBClient {
	return &TMDBClient{
		apiKey:   cfg.TMDBAPIKey,
		baseURL:  strings.TrimSuffix(cfg.TMDBBaseURL, "/"),
		imageURL: strings.TrimSuffix(cfg.TMDBImageURL, "/"),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchMovies queries TMDB for title candidates.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) ([]models.TMDBResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}

	searchURL := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.baseURL, c.apiKey, url.QueryEscape(query))

	var response models.TMDBSearchResponse
	if err := c.getJSON(ctx, searchURL, &response); err != nil {
		return nil, fmt.Errorf("TMDB search for %q failed: %w", query, err)
	}
	return response.Results, nil
}

// MovieDetails fetches the full record for one TMDB movie id.
func (c *TMDBClient) MovieDetails(ctx context.Context, id int) (*models.TMDBMovieDetails, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not set")
	}

	detailURL := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, id, c.apiKey)

	var details models.TMDBMovieDetails
	if err := c.getJSON(ctx, detailURL, &details); err != nil {
		return nil, fmt.Errorf("TMDB details for %d failed: %w", id, err)
	}
	if details.PosterPath == "" {
		return nil, ErrNoPoster
	}
	return &details, nil
}

// ImageURL joins the configured image base with a TMDB poster path fragment.
func (c *TMDBClient) ImageURL(posterPath string) string {
	if !strings.HasPrefix(posterPath, "/") {
		posterPath = "/" + posterPath
	}
	return c.imageURL + posterPath
}

func (c *TMDBClient) getJSON(ctx context.Context, apiURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
