package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no movie exists for the given id.
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when a create collides with an existing title.
	ErrDuplicateTitle = errors.New("movie title already exists")
	// ErrDuplicateID is returned when a create collides with an existing id.
	ErrDuplicateID = errors.New("movie id already exists")
)

// uniqueViolation maps a Postgres unique-constraint error to the matching
// sentinel, or returns nil if err is not a unique violation.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if pgErr.ConstraintName == "movies_pkey" {
		return ErrDuplicateID
	}
	return ErrDuplicateTitle
}
