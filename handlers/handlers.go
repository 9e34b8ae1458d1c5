package handlers

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"Cinerank/config"
	"Cinerank/models"
	"Cinerank/services"
	"Cinerank/templates"
)

// MovieStore is the persistence surface the handlers need.
type MovieStore interface {
	Create(ctx context.Context, m models.Movie) error
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	AllByRating(ctx context.Context) ([]models.Movie, error)
	UpdateReview(ctx context.Context, id int, rating float64, review string) error
	Delete(ctx context.Context, id int) error
	SaveRankings(ctx context.Context, movies []models.Movie) error
}

// MetadataClient is the external movie-search surface the handlers need.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string) ([]models.TMDBResult, error)
	MovieDetails(ctx context.Context, id int) (*models.TMDBMovieDetails, error)
	ImageURL(posterPath string) string
}

// Handler holds everything the page handlers share. All dependencies are
// constructed in main and injected here; there is no package-level state.
type Handler struct {
	cfg      *config.Config
	store    MovieStore
	tmdb     MetadataClient
	sessions *services.Sessions

	indexTmpl  *template.Template
	addTmpl    *template.Template
	selectTmpl *template.Template
	editTmpl   *template.Template
}

func New(cfg *config.Config, store MovieStore, tmdb MetadataClient, sessions *services.Sessions) (*Handler, error) {
	h := &Handler{
		cfg:      cfg,
		store:    store,
		tmdb:     tmdb,
		sessions: sessions,
	}

	var err error
	funcMap := GetFuncMap()
	pages := []struct {
		dst  **template.Template
		name string
		page string
	}{
		{&h.indexTmpl, "index", "pages/index.html"},
		{&h.addTmpl, "add", "pages/add.html"},
		{&h.selectTmpl, "select", "pages/select.html"},
		{&h.editTmpl, "edit", "pages/edit.html"},
	}
	for _, p := range pages {
		*p.dst, err = template.New(p.name).Funcs(funcMap).ParseFS(templates.FS,
			"layouts/base.html", p.page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", p.name, err)
		}
	}

	return h, nil
}

// Routes wires the page handlers onto a mux. CSRF protection and request
// logging wrap the whole mux in main.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Static files
	fs := http.FileServer(http.Dir("static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	mux.HandleFunc("/", h.HomeHandler)
	mux.HandleFunc("/add", h.AddHandler)
	mux.HandleFunc("/get_movie", h.GetMovieHandler)
	mux.HandleFunc("/edit", h.EditHandler)
	mux.HandleFunc("/delete", h.DeleteHandler)

	return mux
}

func GetFuncMap() template.FuncMap {
	return template.FuncMap{
		"rating": func(r *float64) string {
			if r == nil {
				return ""
			}
			return strconv.FormatFloat(*r, 'f', -1, 64)
		},
		"rank": func(r *int) int {
			if r == nil {
				return 0
			}
			return *r
		},
		"review": func(r *string) string {
			if r == nil {
				return ""
			}
			return *r
		},
	}
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "template", tmpl.Name(), "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// flashAndRedirect queues a user-visible message and sends the browser back
// to the list page. Every externally triggered failure (unknown id, TMDB
// outage, duplicate title) lands here instead of a bare 500.
func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, message string) {
	if err := h.sessions.AddFlash(w, r, message); err != nil {
		slog.Error("Failed to save flash message", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ParseIDFromQuery extracts and parses an integer ID from query parameters
func ParseIDFromQuery(r *http.Request, param string) (int, error) {
	idStr := r.URL.Query().Get(param)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s parameter", param)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", param)
	}
	return id, nil
}
