package storage

import "fmt"

// migrate creates the dataset schema if it doesn't exist.
func (db *DB) migrate() error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	db.logger.Info("database migrations applied")
	return nil
}

var migrations = []string{
	// Trips, both local and intercity records. idx preserves load order;
	// it is the trip's identity.
	`CREATE TABLE IF NOT EXISTS trips (
		idx            INTEGER PRIMARY KEY,
		origin         TEXT NOT NULL,
		destination    TEXT NOT NULL,
		via            TEXT NOT NULL DEFAULT '',
		service_class  TEXT NOT NULL DEFAULT '',
		departure_time TEXT NOT NULL,
		operator       TEXT NOT NULL DEFAULT '',
		distance_km    REAL NOT NULL DEFAULT 0,
		duration       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips(destination)`,

	// Import bookkeeping
	`CREATE TABLE IF NOT EXISTS dataset_metadata (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
