package repository

import (
	"time"

	"groomstation/internal/db"
)

// AvailabilityRepository is the single source of truth for which
// (station, date, time) triples are open. Implementations must serialize
// ReserveSlot, ReleaseSlot and PublishSlots per (stationID, date) key.
type AvailabilityRepository interface {
	ListSlots(stationID, date string) ([]string, error)
	PublishSlots(stationID, date string, times []string) error
	ReserveSlot(stationID, date, timeLabel string) error
	ReleaseSlot(stationID, date, timeLabel string) error
	ClearHold(stationID, date, timeLabel string) error
}

type StationRepository interface {
	ListStations() ([]db.Station, error)
	// GetStation returns (nil, nil) when the station does not exist.
	GetStation(id string) (*db.Station, error)
	ListStationsByOwner(ownerID string) ([]db.Station, error)
}

type BookingRepository interface {
	CreateBooking(b *db.Booking) error
	// GetBooking returns (nil, nil) when the booking does not exist.
	GetBooking(id string) (*db.Booking, error)
	ListBookingsByCustomer(customerID string) ([]*db.Booking, error)
	UpdateBookingStatus(id, status string) error
}

type OwnerRepository interface {
	// GetOwnerByEmail returns (nil, nil) when no owner matches.
	GetOwnerByEmail(email string) (*db.Owner, error)
	CreateOwner(o *db.Owner) error
}

// JobRepository backs the recovery sweep: slot holds older than a cutoff
// with no confirmed or completed booking on the same triple.
type JobRepository interface {
	GetOrphanedHolds(before time.Time) ([]db.SlotHold, error)
	DeleteHolds(ids []int64) error
}
