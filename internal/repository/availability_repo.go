package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"

	apperr "groomstation/internal/errors"
)

// PostgresAvailabilityRepository stores one row per (station, date) with the
// open time labels as a text[]. Row-level locks make reserve/release/publish
// linearizable per key while distinct keys proceed in parallel.
type PostgresAvailabilityRepository struct {
	DB *sql.DB
}

func NewPostgresAvailabilityRepository(db *sql.DB) *PostgresAvailabilityRepository {
	return &PostgresAvailabilityRepository{DB: db}
}

func (r *PostgresAvailabilityRepository) ListSlots(stationID, date string) ([]string, error) {
	var times pq.StringArray
	err := r.DB.QueryRow(
		`SELECT times FROM station_availability WHERE station_id = $1 AND date = $2`,
		stationID, date,
	).Scan(&times)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying slots for station %s on %s: %w", stationID, date, err)
	}
	return []string(times), nil
}

func (r *PostgresAvailabilityRepository) PublishSlots(stationID, date string, times []string) error {
	_, err := r.DB.Exec(
		`INSERT INTO station_availability (station_id, date, times)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (station_id, date) DO UPDATE SET times = EXCLUDED.times`,
		stationID, date, pq.StringArray(times),
	)
	if err != nil {
		return fmt.Errorf("error publishing slots for station %s on %s: %w", stationID, date, err)
	}
	return nil
}

// ReserveSlot atomically removes timeLabel from the pool and writes a hold
// row for the recovery sweep. Returns ErrSlotUnavailable without change when
// the label is not open.
func (r *PostgresAvailabilityRepository) ReserveSlot(stationID, date, timeLabel string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning reserve transaction: %w", err)
	}
	defer tx.Rollback()

	var times pq.StringArray
	err = tx.QueryRow(
		`SELECT times FROM station_availability WHERE station_id = $1 AND date = $2 FOR UPDATE`,
		stationID, date,
	).Scan(&times)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrSlotUnavailable
	}
	if err != nil {
		return fmt.Errorf("error locking slot row: %w", err)
	}

	remaining, found := removeLabel(times, timeLabel)
	if !found {
		return apperr.ErrSlotUnavailable
	}

	if _, err := tx.Exec(
		`UPDATE station_availability SET times = $3 WHERE station_id = $1 AND date = $2`,
		stationID, date, pq.StringArray(remaining),
	); err != nil {
		return fmt.Errorf("error updating slot row: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO slot_holds (station_id, date, time, created_at) VALUES ($1, $2, $3, NOW())`,
		stationID, date, timeLabel,
	); err != nil {
		return fmt.Errorf("error recording slot hold: %w", err)
	}
	return tx.Commit()
}

// ReleaseSlot re-inserts timeLabel into the sorted pool. Idempotent: a label
// already present is left alone.
func (r *PostgresAvailabilityRepository) ReleaseSlot(stationID, date, timeLabel string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning release transaction: %w", err)
	}
	defer tx.Rollback()

	var times pq.StringArray
	err = tx.QueryRow(
		`SELECT times FROM station_availability WHERE station_id = $1 AND date = $2 FOR UPDATE`,
		stationID, date,
	).Scan(&times)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := tx.Exec(
			`INSERT INTO station_availability (station_id, date, times) VALUES ($1, $2, $3)`,
			stationID, date, pq.StringArray{timeLabel},
		); err != nil {
			return fmt.Errorf("error inserting slot row on release: %w", err)
		}
		return tx.Commit()
	}
	if err != nil {
		return fmt.Errorf("error locking slot row: %w", err)
	}

	updated, changed := insertLabel(times, timeLabel)
	if !changed {
		return tx.Commit()
	}
	if _, err := tx.Exec(
		`UPDATE station_availability SET times = $3 WHERE station_id = $1 AND date = $2`,
		stationID, date, pq.StringArray(updated),
	); err != nil {
		return fmt.Errorf("error updating slot row on release: %w", err)
	}
	return tx.Commit()
}

func (r *PostgresAvailabilityRepository) ClearHold(stationID, date, timeLabel string) error {
	_, err := r.DB.Exec(
		`DELETE FROM slot_holds WHERE station_id = $1 AND date = $2 AND time = $3`,
		stationID, date, timeLabel,
	)
	if err != nil {
		return fmt.Errorf("error clearing slot hold: %w", err)
	}
	return nil
}

func removeLabel(times []string, label string) ([]string, bool) {
	remaining := make([]string, 0, len(times))
	found := false
	for _, t := range times {
		if t == label {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	return remaining, found
}

// insertLabel keeps the pool sorted and duplicate-free. HH:MM labels sort
// chronologically as plain strings.
func insertLabel(times []string, label string) ([]string, bool) {
	for _, t := range times {
		if t == label {
			return times, false
		}
	}
	updated := append(append([]string{}, times...), label)
	sort.Strings(updated)
	return updated, true
}
