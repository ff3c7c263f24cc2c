package entities

// SelectionTotals is the aggregate over the chosen catalog entries.
type SelectionTotals struct {
	TotalPrice           int `json:"total_price"`
	TotalDurationMinutes int `json:"total_duration_minutes"`
}
