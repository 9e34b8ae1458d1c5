package services

import "Cinerank/models"

// AssignRankings sets the ranking for a slice already ordered ascending by
// rating: the last (highest rated) movie gets rank len(movies), the first
// gets rank 1. Ties keep whatever order the ascending read produced.
// The function only mutates the in-memory slice; persisting the result is
// MovieStore.SaveRankings, which the caller may skip.
func AssignRankings(movies []models.Movie) {
	n := len(movies)
	for i := range movies {
		rank := n - i
		movies[i].Ranking = &rank
	}
}
