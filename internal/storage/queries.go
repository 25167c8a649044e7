package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"putturbus/internal/dataset"
)

// viaSeparator joins via stops for storage. Stop names are free text but
// never contain a pipe.
const viaSeparator = "|"

// MetaImportedAt is the dataset_metadata key recording when the cache was
// last refreshed, as RFC 3339 UTC.
const MetaImportedAt = "imported_at"

// HasTrips reports whether the dataset has been imported.
func (db *DB) HasTrips(ctx context.Context) bool {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips`).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// GetMetadata retrieves a value from the dataset_metadata table.
func (db *DB) GetMetadata(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM dataset_metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetMetadata stores a key-value pair in the dataset_metadata table.
func (db *DB) SetMetadata(ctx context.Context, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO dataset_metadata (key, value) VALUES (?, ?)`,
		key, value)
	return err
}

// ImportTrips replaces the cached dataset in a single transaction.
func (db *DB) ImportTrips(ctx context.Context, trips []dataset.Trip) error {
	start := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips`); err != nil {
		return fmt.Errorf("clear trips: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (idx, origin, destination, via, service_class,
		                   departure_time, operator, distance_km, duration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		_, err := stmt.ExecContext(ctx, t.Index, t.Origin, t.Destination,
			strings.Join(t.Via, viaSeparator), t.ServiceClass,
			t.DepartureTime, t.Operator, t.DistanceKm, t.Duration)
		if err != nil {
			return fmt.Errorf("insert trip %d: %w", t.Index, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO dataset_metadata (key, value) VALUES (?, ?)`,
		MetaImportedAt, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("record import time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	db.logger.Info("dataset imported", "trips", len(trips), "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// LoadTrips reads the full cached dataset in load order.
func (db *DB) LoadTrips(ctx context.Context) ([]dataset.Trip, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT idx, origin, destination, via, service_class,
		       departure_time, operator, distance_km, duration
		FROM trips ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	defer rows.Close()

	var trips []dataset.Trip
	for rows.Next() {
		var t dataset.Trip
		var via string
		if err := rows.Scan(&t.Index, &t.Origin, &t.Destination, &via,
			&t.ServiceClass, &t.DepartureTime, &t.Operator,
			&t.DistanceKm, &t.Duration); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		if via != "" {
			t.Via = strings.Split(via, viaSeparator)
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}
