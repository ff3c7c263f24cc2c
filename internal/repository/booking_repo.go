package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"groomstation/internal/db"
)

type PostgresBookingRepository struct {
	DB *sql.DB
}

func NewPostgresBookingRepository(db *sql.DB) *PostgresBookingRepository {
	return &PostgresBookingRepository{DB: db}
}

// CreateBooking persists the booking and its service snapshot rows in one
// transaction.
func (r *PostgresBookingRepository) CreateBooking(b *db.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error beginning booking transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bookings
		(id, customer_id, station_id, station_name, date, time, total_price, status, reward_issued, payment_ref, contact_email, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	if _, err := tx.Exec(query,
		b.ID,
		b.CustomerID,
		b.StationID,
		b.StationName,
		b.Date,
		b.Time,
		b.TotalPrice,
		b.Status,
		b.RewardIssued,
		b.PaymentRef,
		b.ContactEmail,
		b.ContactPhone,
		b.CreatedAt,
		b.UpdatedAt,
	); err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	for i, s := range b.Services {
		if _, err := tx.Exec(
			`INSERT INTO booking_services (booking_id, position, service_id, name, duration_minutes, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			b.ID, i, s.ServiceID, s.Name, s.DurationMinutes, s.Price,
		); err != nil {
			return fmt.Errorf("error inserting booking service snapshot: %w", err)
		}
	}
	return tx.Commit()
}

func (r *PostgresBookingRepository) GetBooking(id string) (*db.Booking, error) {
	var b db.Booking
	query := `
		SELECT id, customer_id, station_id, station_name, date, time, total_price, status, reward_issued, payment_ref, contact_email, contact_phone, created_at, updated_at
		FROM bookings WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.CustomerID, &b.StationID, &b.StationName, &b.Date, &b.Time,
		&b.TotalPrice, &b.Status, &b.RewardIssued, &b.PaymentRef,
		&b.ContactEmail, &b.ContactPhone, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying booking '%s': %w", id, err)
	}

	services, err := r.loadServices([]string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Services = services[b.ID]
	return &b, nil
}

// ListBookingsByCustomer returns bookings in creation order.
func (r *PostgresBookingRepository) ListBookingsByCustomer(customerID string) ([]*db.Booking, error) {
	query := `
		SELECT id, customer_id, station_id, station_name, date, time, total_price, status, reward_issued, payment_ref, contact_email, contact_phone, created_at, updated_at
		FROM bookings WHERE customer_id = $1 ORDER BY created_at, id`
	rows, err := r.DB.Query(query, customerID)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for customer: %w", err)
	}
	defer rows.Close()

	var bookings []*db.Booking
	var ids []string
	for rows.Next() {
		var b db.Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.StationID, &b.StationName, &b.Date, &b.Time,
			&b.TotalPrice, &b.Status, &b.RewardIssued, &b.PaymentRef,
			&b.ContactEmail, &b.ContactPhone, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, &b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	services, err := r.loadServices(ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Services = services[b.ID]
	}
	return bookings, nil
}

func (r *PostgresBookingRepository) UpdateBookingStatus(id, status string) error {
	result, err := r.DB.Exec(
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("booking '%s' not found for status update", id)
	}
	return nil
}

func (r *PostgresBookingRepository) loadServices(bookingIDs []string) (map[string][]db.BookedService, error) {
	rows, err := r.DB.Query(
		`SELECT booking_id, service_id, name, duration_minutes, price
		 FROM booking_services WHERE booking_id = ANY($1) ORDER BY booking_id, position`,
		pq.Array(bookingIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("error querying booking services: %w", err)
	}
	defer rows.Close()

	services := make(map[string][]db.BookedService)
	for rows.Next() {
		var bookingID string
		var s db.BookedService
		if err := rows.Scan(&bookingID, &s.ServiceID, &s.Name, &s.DurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("error scanning booking service row: %w", err)
		}
		services[bookingID] = append(services[bookingID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking service rows: %w", err)
	}
	return services, nil
}
