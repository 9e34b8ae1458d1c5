package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Cinerank/config"
)

func testClient(baseURL string) *TMDBClient {
	return NewTMDBClient(&config.Config{
		TMDBAPIKey:   "test-key",
		TMDBBaseURL:  baseURL,
		TMDBImageURL: "https://image.tmdb.org/t/p/original",
	})
}

func TestSearchMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("api_key = %q; want test-key", got)
		}
		if got := r.URL.Query().Get("query"); got != "Inception" {
			t.Errorf("query = %q; want Inception", got)
		}
		w.Write([]byte(`{"results":[{"id":27205,"title":"Inception","release_date":"2010-07-15","overview":"A thief...","poster_path":"/inception.jpg","vote_average":8.4}]}`))
	}))
	defer srv.Close()

	results, err := testClient(srv.URL).SearchMovies(context.Background(), "Inception")
	if err != nil {
		t.Fatalf("SearchMovies: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results; want 1", len(results))
	}
	r := results[0]
	if r.ID != 27205 || r.Title != "Inception" || r.ReleaseDate != "2010-07-15" || r.PosterPath != "/inception.jpg" {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestSearchMoviesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).SearchMovies(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestSearchMoviesMissingAPIKey(t *testing.T) {
	c := NewTMDBClient(&config.Config{TMDBBaseURL: "http://localhost"})
	if _, err := c.SearchMovies(context.Background(), "anything"); err == nil {
		t.Fatal("expected error when API key is unset")
	}
}

func TestMovieDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/27205" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":27205,"original_title":"Inception","release_date":"2010-07-15","overview":"A thief...","poster_path":"/inception.jpg"}`))
	}))
	defer srv.Close()

	details, err := testClient(srv.URL).MovieDetails(context.Background(), 27205)
	if err != nil {
		t.Fatalf("MovieDetails: %v", err)
	}
	if details.OriginalTitle != "Inception" || details.ReleaseDate != "2010-07-15" {
		t.Errorf("unexpected details: %+v", details)
	}
}

func TestMovieDetailsMissingPoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":42,"original_title":"Obscure","release_date":"1999-01-01","overview":"...","poster_path":""}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).MovieDetails(context.Background(), 42)
	if !errors.Is(err, ErrNoPoster) {
		t.Fatalf("err = %v; want ErrNoPoster", err)
	}
}

func TestImageURL(t *testing.T) {
	c := testClient("http://localhost")

	tests := []struct {
		posterPath string
		want       string
	}{
		{"/abc.jpg", "https://image.tmdb.org/t/p/original/abc.jpg"},
		{"abc.jpg", "https://image.tmdb.org/t/p/original/abc.jpg"},
	}

	for _, tt := range tests {
		if got := c.ImageURL(tt.posterPath); got != tt.want {
			t.Errorf("ImageURL(%q) = %q; want %q", tt.posterPath, got, tt.want)
		}
	}
}
