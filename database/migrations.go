package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations provisions the movies table on first startup. The id is the
// external provider's movie id, assigned when a search result is selected,
// so it is a plain integer primary key rather than a serial.
func RunMigrations(db *sql.DB) error {
	moviesTableSQL := `
	CREATE TABLE IF NOT EXISTS movies (
		id INTEGER PRIMARY KEY,
		title VARCHAR(250) UNIQUE NOT NULL,
		year VARCHAR(250) NOT NULL,
		description VARCHAR(500) NOT NULL,
		rating DOUBLE PRECISION,
		ranking INTEGER,
		review VARCHAR(500),
		img_url VARCHAR(250) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(moviesTableSQL)
	if err != nil {
		return fmt.Errorf("failed to run movies migration: %w", err)
	}

	return nil
}
