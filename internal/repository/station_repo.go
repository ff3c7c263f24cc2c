package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"groomstation/internal/db"
)

type PostgresStationRepository struct {
	DB *sql.DB
}

func NewPostgresStationRepository(db *sql.DB) *PostgresStationRepository {
	return &PostgresStationRepository{DB: db}
}

func (r *PostgresStationRepository) ListStations() ([]db.Station, error) {
	return r.queryStations(`SELECT id, name, address, rating, owner_id FROM stations ORDER BY name`)
}

func (r *PostgresStationRepository) ListStationsByOwner(ownerID string) ([]db.Station, error) {
	return r.queryStations(
		`SELECT id, name, address, rating, owner_id FROM stations WHERE owner_id = $1 ORDER BY name`,
		ownerID,
	)
}

func (r *PostgresStationRepository) GetStation(id string) (*db.Station, error) {
	var st db.Station
	err := r.DB.QueryRow(
		`SELECT id, name, address, rating, owner_id FROM stations WHERE id = $1`, id,
	).Scan(&st.ID, &st.Name, &st.Address, &st.Rating, &st.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying station '%s': %w", id, err)
	}
	if err := r.loadServices(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *PostgresStationRepository) queryStations(query string, args ...interface{}) ([]db.Station, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying stations: %w", err)
	}
	defer rows.Close()

	var stations []db.Station
	for rows.Next() {
		var st db.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.Address, &st.Rating, &st.OwnerID); err != nil {
			return nil, fmt.Errorf("error scanning station row: %w", err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating station rows: %w", err)
	}
	for i := range stations {
		if err := r.loadServices(&stations[i]); err != nil {
			return nil, err
		}
	}
	return stations, nil
}

func (r *PostgresStationRepository) loadServices(st *db.Station) error {
	rows, err := r.DB.Query(
		`SELECT id, name, duration_minutes, price FROM station_services WHERE station_id = $1 ORDER BY id`,
		st.ID,
	)
	if err != nil {
		return fmt.Errorf("error querying services for station '%s': %w", st.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s db.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Price); err != nil {
			return fmt.Errorf("error scanning service row: %w", err)
		}
		st.Services = append(st.Services, s)
	}
	return rows.Err()
}
