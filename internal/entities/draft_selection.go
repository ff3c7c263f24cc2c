package entities

import (
	"time"

	"groomstation/internal/db"
)

// DraftSelection is a customer's staged, unconfirmed choice. It has no
// identity of its own: staging a new one replaces it, confirming clears it.
type DraftSelection struct {
	StationID            string       `json:"station_id"`
	StationName          string       `json:"station_name"`
	Date                 string       `json:"date"`
	Time                 string       `json:"time"`
	Services             []db.Service `json:"services"`
	TotalPrice           int          `json:"total_price"`
	TotalDurationMinutes int          `json:"total_duration_minutes"`
	ContactEmail         string       `json:"contact_email,omitempty"`
	ContactPhone         string       `json:"contact_phone,omitempty"`
	StagedAt             time.Time    `json:"staged_at"`
}
