package entities

import "groomstation/internal/db"

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
}

type StationResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Rating   float64           `json:"rating"`
	Services []ServiceResponse `json:"services"`
}

func NewStationResponse(st *db.Station) StationResponse {
	resp := StationResponse{
		ID:      st.ID,
		Name:    st.Name,
		Address: st.Address,
		Rating:  st.Rating,
	}
	for _, s := range st.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	return resp
}

// CalendarDay is one cell of the month grid. Date is empty for the
// placeholder cells padding the first and last week.
type CalendarDay struct {
	Date     string `json:"date,omitempty"`
	Bookable bool   `json:"bookable"`
}
