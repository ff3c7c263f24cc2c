package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"groomstation/internal/auth"
	"groomstation/internal/entities"
	"groomstation/internal/service"
)

type OwnerHandler struct {
	Auth         service.OwnerAuthService
	Stations     *service.StationService
	Availability *service.AvailabilityService
	Bookings     *service.BookingService
}

func NewOwnerHandler(
	authSvc service.OwnerAuthService,
	stations *service.StationService,
	availability *service.AvailabilityService,
	bookings *service.BookingService,
) *OwnerHandler {
	return &OwnerHandler{Auth: authSvc, Stations: stations, Availability: availability, Bookings: bookings}
}

func (h *OwnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *OwnerHandler) ListOwnStations(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	stations, err := h.Stations.ListStationsByOwner(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]entities.StationResponse, 0, len(stations))
	for i := range stations {
		resp = append(resp, entities.NewStationResponse(&stations[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// PublishSlots replaces the station's slot list for one date.
func (h *OwnerHandler) PublishSlots(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	stationID := mux.Vars(r)["id"]

	var req PublishSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Availability.PublishSlots(user.ID, stationID, req.Date, req.Slots); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Slots published"})
}

// CompleteBooking marks a delivered session as completed.
func (h *OwnerHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	booking, err := h.Bookings.CompleteBooking(mux.Vars(r)["id"], user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewBookingResponse(booking))
}
