package entities

import (
	"time"

	"groomstation/internal/db"
)

type BookedServiceResponse struct {
	ServiceID       string `json:"service_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
}

type BookingResponse struct {
	ID           string                  `json:"id"`
	StationID    string                  `json:"station_id"`
	StationName  string                  `json:"station_name"`
	Date         string                  `json:"date"`
	Time         string                  `json:"time"`
	Services     []BookedServiceResponse `json:"services"`
	TotalPrice   int                     `json:"total_price"`
	Status       string                  `json:"status"`
	RewardIssued bool                    `json:"reward_issued"`
	CreatedAt    time.Time               `json:"created_at"`
}

// NewBookingResponse maps the stored record onto the wire shape.
func NewBookingResponse(b *db.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		StationID:    b.StationID,
		StationName:  b.StationName,
		Date:         b.Date,
		Time:         b.Time,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		RewardIssued: b.RewardIssued,
		CreatedAt:    b.CreatedAt,
	}
	for _, s := range b.Services {
		resp.Services = append(resp.Services, BookedServiceResponse{
			ServiceID:       s.ServiceID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	return resp
}
