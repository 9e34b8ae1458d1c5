package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestUniqueViolationMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "title constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "movies_title_key"},
			want: ErrDuplicateTitle,
		},
		{
			name: "primary key constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "movies_pkey"},
			want: ErrDuplicateID,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "movies_title_key"}),
			want: ErrDuplicateTitle,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: "23502"},
			want: nil,
		},
		{
			name: "not a pg error",
			err:  errors.New("connection refused"),
			want: nil,
		},
	}

	for _, tt := range tests {
		if got := uniqueViolation(tt.err); got != tt.want {
			t.Errorf("%s: uniqueViolation() = %v; want %v", tt.name, got, tt.want)
		}
	}
}
