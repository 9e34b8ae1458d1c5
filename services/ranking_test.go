package services

import (
	"testing"

	"Cinerank/models"
)

func ratedMovie(id int, rating float64) models.Movie {
	return models.Movie{ID: id, Rating: &rating}
}

func TestAssignRankingsOrdersDescending(t *testing.T) {
	// Input mirrors the store's ascending-by-rating read.
	movies := []models.Movie{
		ratedMovie(1, 2.5),
		ratedMovie(2, 7.0),
		ratedMovie(3, 9.5),
	}

	AssignRankings(movies)

	wantRanks := []int{3, 2, 1}
	for i, m := range movies {
		if m.Ranking == nil {
			t.Fatalf("movie %d has no ranking", m.ID)
		}
		if *m.Ranking != wantRanks[i] {
			t.Errorf("movie %d ranking = %d; want %d", m.ID, *m.Ranking, wantRanks[i])
		}
	}
}

func TestAssignRankingsIsPermutationOfOneToN(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(10, 1.0),
		ratedMovie(11, 4.5),
		ratedMovie(12, 4.5),
		ratedMovie(13, 8.0),
		ratedMovie(14, 10.0),
	}

	AssignRankings(movies)

	seen := map[int]bool{}
	for _, m := range movies {
		if m.Ranking == nil {
			t.Fatalf("movie %d has no ranking", m.ID)
		}
		if *m.Ranking < 1 || *m.Ranking > len(movies) {
			t.Errorf("movie %d ranking %d out of range 1..%d", m.ID, *m.Ranking, len(movies))
		}
		if seen[*m.Ranking] {
			t.Errorf("duplicate ranking %d", *m.Ranking)
		}
		seen[*m.Ranking] = true
	}
}

func TestAssignRankingsIdempotent(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(1, 3.0),
		ratedMovie(2, 6.0),
	}

	AssignRankings(movies)
	first := []int{*movies[0].Ranking, *movies[1].Ranking}

	AssignRankings(movies)
	second := []int{*movies[0].Ranking, *movies[1].Ranking}

	if first[0] != second[0] || first[1] != second[1] {
		t.Errorf("repeated assignment changed rankings: %v vs %v", first, second)
	}
}

func TestAssignRankingsTiesKeepInputOrder(t *testing.T) {
	// Equal ratings arrive in primary-key order; the later row ranks higher.
	movies := []models.Movie{
		ratedMovie(5, 7.0),
		ratedMovie(8, 7.0),
	}

	AssignRankings(movies)

	if *movies[0].Ranking != 2 || *movies[1].Ranking != 1 {
		t.Errorf("tie rankings = %d, %d; want 2, 1", *movies[0].Ranking, *movies[1].Ranking)
	}
}

func TestAssignRankingsEmpty(t *testing.T) {
	var movies []models.Movie
	AssignRankings(movies) // must not panic
	if len(movies) != 0 {
		t.Errorf("expected empty slice to stay empty")
	}
}

func TestAssignRankingsUnratedSortFirst(t *testing.T) {
	unrated := models.Movie{ID: 3}
	movies := []models.Movie{
		unrated,
		ratedMovie(1, 5.0),
	}

	AssignRankings(movies)

	if *movies[0].Ranking != 2 {
		t.Errorf("unrated movie ranking = %d; want 2", *movies[0].Ranking)
	}
	if *movies[1].Ranking != 1 {
		t.Errorf("rated movie ranking = %d; want 1", *movies[1].Ranking)
	}
}
