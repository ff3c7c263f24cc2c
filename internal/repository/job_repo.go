package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"groomstation/internal/db"
)

type PostgresJobRepository struct {
	DB *sql.DB
}

func NewPostgresJobRepository(db *sql.DB) *PostgresJobRepository {
	return &PostgresJobRepository{DB: db}
}

// GetOrphanedHolds returns slot holds older than the cutoff that never got a
// confirmed or completed booking on the same (station, date, time) triple.
// These are slots lost between a reserve and a booking persist; the sweep
// releases them back into the pool.
func (r *PostgresJobRepository) GetOrphanedHolds(before time.Time) ([]db.SlotHold, error) {
	query := `
		SELECT h.id, h.station_id, h.date, h.time, h.created_at
		FROM slot_holds h
		WHERE h.created_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.station_id = h.station_id AND b.date = h.date AND b.time = h.time
			  AND b.status IN ('confirmed', 'completed')
		  )`
	rows, err := r.DB.Query(query, before)
	if err != nil {
		return nil, fmt.Errorf("error querying orphaned slot holds: %w", err)
	}
	defer rows.Close()

	var holds []db.SlotHold
	for rows.Next() {
		var h db.SlotHold
		if err := rows.Scan(&h.ID, &h.StationID, &h.Date, &h.Time, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning slot hold row: %w", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating slot hold rows: %w", err)
	}
	return holds, nil
}

func (r *PostgresJobRepository) DeleteHolds(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DB.Exec(`DELETE FROM slot_holds WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error deleting slot holds: %w", err)
	}
	return nil
}
