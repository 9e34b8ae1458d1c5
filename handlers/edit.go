package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"

	"Cinerank/models"
	"Cinerank/services"
)

type EditData struct {
	Movie     *models.Movie
	Form      EditForm
	Errors    map[string]string
	CSRFField template.HTML
}

// EditHandler pre-fills the rating/review form on GET and commits the
// submission on POST. Rating and review are the only editable fields.
func (h *Handler) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDFromQuery(r, "id")
	if err != nil {
		h.flashAndRedirect(w, r, "Missing or invalid movie id")
		return
	}

	movie, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.flashAndRedirect(w, r, "Movie not found.")
			return
		}
		slog.Error("Error loading movie", "id", id, "error", err)
		http.Error(w, "Failed to load movie", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		form := EditForm{}
		if movie.Rating != nil {
			form.Rating = strconv.FormatFloat(*movie.Rating, 'f', -1, 64)
		}
		if movie.Review != nil {
			form.Review = *movie.Review
		}
		h.render(w, h.editTmpl, EditData{
			Movie:     movie,
			Form:      form,
			CSRFField: csrf.TemplateField(r),
		})
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	form := EditForm{
		Rating: strings.TrimSpace(r.FormValue("rating")),
		Review: strings.TrimSpace(r.FormValue("review")),
	}
	if formErrors := ValidateForm(form); formErrors != nil {
		h.render(w, h.editTmpl, EditData{
			Movie:     movie,
			Form:      form,
			Errors:    formErrors,
			CSRFField: csrf.TemplateField(r),
		})
		return
	}

	// Validation guarantees the rating parses.
	rating, _ := strconv.ParseFloat(form.Rating, 64)

	if err := h.store.UpdateReview(r.Context(), id, rating, form.Review); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.flashAndRedirect(w, r, "Movie not found.")
			return
		}
		slog.Error("Error updating movie", "id", id, "error", err)
		http.Error(w, "Failed to update movie", http.StatusInternalServerError)
		return
	}

	slog.Info("Movie reviewed", "id", id, "rating", rating)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteHandler removes a movie permanently. Deleting an unknown id is
// reported to the user rather than ignored.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIDFromQuery(r, "id")
	if err != nil {
		h.flashAndRedirect(w, r, "Missing or invalid movie id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.flashAndRedirect(w, r, "Movie not found.")
			return
		}
		slog.Error("Error deleting movie", "id", id, "error", err)
		http.Error(w, "Failed to delete movie", http.StatusInternalServerError)
		return
	}

	slog.Info("Movie deleted", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
