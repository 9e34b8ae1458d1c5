package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/csrf"

	"Cinerank/models"
	"Cinerank/services"
)

type AddData struct {
	Form      AddForm
	Errors    map[string]string
	CSRFField template.HTML
}

type SelectData struct {
	Query   string
	Results []models.TMDBResult
}

// AddHandler shows the title form on GET and runs the external search on
// POST, rendering the candidate selection page. Nothing is persisted until
// the user picks a result.
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, h.addTmpl, AddData{CSRFField: csrf.TemplateField(r)})
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	form := AddForm{Title: strings.TrimSpace(r.FormValue("title"))}
	if formErrors := ValidateForm(form); formErrors != nil {
		h.render(w, h.addTmpl, AddData{
			Form:      form,
			Errors:    formErrors,
			CSRFField: csrf.TemplateField(r),
		})
		return
	}

	results, err := h.tmdb.SearchMovies(r.Context(), form.Title)
	if err != nil {
		slog.Error("Movie search failed", "query", form.Title, "error", err)
		h.flashAndRedirect(w, r, "The movie search service is unavailable right now. Please try again later.")
		return
	}

	h.render(w, h.selectTmpl, SelectData{Query: form.Title, Results: results})
}

// GetMovieHandler completes step two of the add flow: fetch the selected
// movie's details and create the record, then hand off to the edit form so
// the user can rate it.
func (h *Handler) GetMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDFromQuery(r, "id")
	if err != nil {
		h.flashAndRedirect(w, r, "Missing or invalid movie id")
		return
	}

	details, err := h.tmdb.MovieDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNoPoster) {
			h.flashAndRedirect(w, r, "That movie has no poster image and cannot be added.")
			return
		}
		slog.Error("Movie details fetch failed", "id", id, "error", err)
		h.flashAndRedirect(w, r, "Could not fetch movie details. Please try again later.")
		return
	}

	movie := models.Movie{
		ID:          details.ID,
		Title:       truncate(details.OriginalTitle, 250),
		Year:        details.ReleaseDate,
		Description: truncate(details.Overview, 500),
		ImgURL:      truncate(h.tmdb.ImageURL(details.PosterPath), 250),
	}

	if err := h.store.Create(r.Context(), movie); err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) || errors.Is(err, services.ErrDuplicateID) {
			h.flashAndRedirect(w, r, fmt.Sprintf("%s is already in your list.", movie.Title))
			return
		}
		slog.Error("Error creating movie", "id", id, "error", err)
		h.flashAndRedirect(w, r, "Could not add the movie. Please try again.")
		return
	}

	slog.Info("Movie added", "id", movie.ID, "title", movie.Title)
	http.Redirect(w, r, fmt.Sprintf("/edit?id=%d", movie.ID), http.StatusSeeOther)
}

// truncate keeps a string inside its column bound. VARCHAR(n) limits
// characters, not bytes, so count runes; slicing by byte index could also
// split a multi-byte rune and hand Postgres invalid UTF-8.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
