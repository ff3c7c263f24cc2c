package db

import "time"

// Booking statuses. Bookings are created confirmed once payment succeeded;
// pending is reserved for asynchronous payment flows.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Roles carried by the auth token.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// Service is one catalog entry of a station. Immutable once published.
// Price is in whole currency units.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           int
}

type Station struct {
	ID       string
	Name     string
	Address  string
	Rating   float64
	OwnerID  string
	Services []Service
}

// AvailabilityEntry is one (station, date) slot pool row. Times holds the
// open HH:MM labels, kept deduplicated and sorted ascending.
type AvailabilityEntry struct {
	StationID string
	Date      string
	Times     []string
}

// BookedService is a snapshot of a catalog entry at confirmation time.
type BookedService struct {
	ServiceID       string
	Name            string
	DurationMinutes int
	Price           int
}

// Booking is an immutable historical record: snapshot fields never track
// later catalog or station edits. Only Status and UpdatedAt change.
type Booking struct {
	ID           string
	CustomerID   string
	StationID    string
	StationName  string
	Date         string
	Time         string
	Services     []BookedService
	TotalPrice   int
	Status       string
	RewardIssued bool
	PaymentRef   string
	ContactEmail string
	ContactPhone string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SlotHold is the audit row written when a slot is reserved and cleared once
// the matching booking is persisted. The recovery sweep releases stale ones.
type SlotHold struct {
	ID        int64
	StationID string
	Date      string
	Time      string
	CreatedAt time.Time
}

type Owner struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}
