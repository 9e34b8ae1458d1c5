package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Cinerank/models"
)

// MovieStore owns all reads and writes against the movies table.
type MovieStore struct {
	db *sql.DB
}

func NewMovieStore(db *sql.DB) *MovieStore {
	return &MovieStore{db: db}
}

// Create inserts a newly selected movie. Rating, ranking and review stay
// NULL until the user submits the edit form.
func (s *MovieStore) Create(ctx context.Context, m models.Movie) error {
	query := `
		INSERT INTO movies (id, title, year, description, img_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
	`
	_, err := s.db.ExecContext(ctx, query, m.ID, m.Title, m.Year, m.Description, m.ImgURL)
	if err != nil {
		if dup := uniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (s *MovieStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url, created_at, updated_at
		FROM movies WHERE id = $1
	`
	var m models.Movie
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &m, nil
}

// AllByRating returns every movie ordered ascending by rating. Unrated
// movies sort first; equal ratings keep primary-key order so repeated
// listings rank them identically.
func (s *MovieStore) AllByRating(ctx context.Context) ([]models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url, created_at, updated_at
		FROM movies ORDER BY rating ASC NULLS FIRST, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// UpdateReview sets rating and review. Title, year, description and image
// are fixed at creation and have no update path.
func (s *MovieStore) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	query := `
		UPDATE movies SET rating = $1, review = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`
	res, err := s.db.ExecContext(ctx, query, rating, review, id)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MovieStore) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveRankings writes back the ranking column for the given movies in one
// transaction. The computation itself lives in ranking.go; callers that
// only need the numbers for display can skip this step.
func (s *MovieStore) SaveRankings(ctx context.Context, movies []models.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin ranking update: %w", err)
	}
	defer tx.Rollback()

	for _, m := range movies {
		if _, err := tx.ExecContext(ctx, `UPDATE movies SET ranking = $1 WHERE id = $2`, m.Ranking, m.ID); err != nil {
			return fmt.Errorf("failed to save ranking for movie %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ranking update: %w", err)
	}
	return nil
}
