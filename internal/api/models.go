package api

// Availability
type PublishSlotsRequest struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
type SlotsResponse struct {
	StationID string   `json:"station_id"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"`
}

// Selection / draft
type QuoteRequest struct {
	ServiceIDs []string `json:"service_ids"`
}
type StageDraftRequest struct {
	StationID    string   `json:"station_id"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	ServiceIDs   []string `json:"service_ids"`
	ContactEmail string   `json:"contact_email,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
}

// Checkout
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// Owner auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
