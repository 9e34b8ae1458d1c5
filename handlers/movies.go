package handlers

import (
	"log/slog"
	"net/http"

	"Cinerank/models"
	"Cinerank/services"
)

type IndexData struct {
	Movies  []models.Movie
	Flashes []string
}

// HomeHandler lists the collection ordered by rating with freshly computed
// rank numbers. The write-back keeps the stored ranking column consistent
// with what was just displayed.
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	movies, err := h.store.AllByRating(r.Context())
	if err != nil {
		slog.Error("Error listing movies", "error", err)
		http.Error(w, "Failed to load movies", http.StatusInternalServerError)
		return
	}

	services.AssignRankings(movies)
	if err := h.store.SaveRankings(r.Context(), movies); err != nil {
		// The page still renders; the stored column catches up on the next listing.
		slog.Error("Error persisting rankings", "error", err)
	}

	data := IndexData{
		Movies:  movies,
		Flashes: h.sessions.Flashes(w, r),
	}
	h.render(w, h.indexTmpl, data)
}
