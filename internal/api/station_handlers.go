package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"groomstation/internal/entities"
	"groomstation/internal/service"
)

type StationHandler struct {
	Stations     *service.StationService
	Availability *service.AvailabilityService
}

func NewStationHandler(stations *service.StationService, availability *service.AvailabilityService) *StationHandler {
	return &StationHandler{Stations: stations, Availability: availability}
}

func (h *StationHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Stations.ListStations()
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

func (h *StationHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	station, err := h.Stations.GetStation(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.NewStationResponse(station))
}

// ListSlots returns the open time labels for ?date=YYYY-MM-DD.
func (h *StationHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	stationID := mux.Vars(r)["id"]
	date := r.URL.Query().Get("date")
	slots, err := h.Availability.ListSlots(stationID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SlotsResponse{StationID: stationID, Date: date, Slots: slots})
}

// GetCalendar renders the ?year=&month= grid with per-day bookability.
func (h *StationHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	stationID := mux.Vars(r)["id"]
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		http.Error(w, "year and month query parameters are required", http.StatusBadRequest)
		return
	}

	grid, err := h.Availability.MonthGrid(stationID, year, time.Month(month), time.Now().UTC())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

// Quote aggregates price and duration for a tentative service selection.
func (h *StationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	station, err := h.Stations.GetStation(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.AggregateSelection(station.Services, req.ServiceIDs))
}
