package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the sqlite file at path and makes sure the schema
// exists. Parent directories are created if needed. Schema creation is
// idempotent so every process start goes through the same call.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}

// createSchema creates the two tables if they don't exist. groupride declares
// no FOREIGN KEY clause: the coffee_shop_id reference is validated by the
// ride service at write time, so deleting a shop never fails or cascades.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS coffeeshop (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			start_location TEXT NOT NULL,
			is_cyclist_friendly INTEGER NOT NULL DEFAULT 1,
			notes TEXT
		);

		CREATE TABLE IF NOT EXISTS groupride (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			date_time INTEGER NOT NULL,
			pace TEXT NOT NULL,
			distance_km REAL NOT NULL,
			start_location TEXT NOT NULL,
			coffee_shop_id INTEGER,
			notes TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_groupride_date_time
			ON groupride(date_time);

		CREATE INDEX IF NOT EXISTS idx_groupride_pace
			ON groupride(pace);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}
