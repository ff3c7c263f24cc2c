package service

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"groomstation/internal/calendar"
	"groomstation/internal/entities"
	apperr "groomstation/internal/errors"
	"groomstation/internal/repository"
)

var timeLabelPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type AvailabilityService struct {
	Stations     repository.StationRepository
	Availability repository.AvailabilityRepository
}

func NewAvailabilityService(stations repository.StationRepository, availability repository.AvailabilityRepository) *AvailabilityService {
	return &AvailabilityService{Stations: stations, Availability: availability}
}

func (s *AvailabilityService) ListSlots(stationID, date string) ([]string, error) {
	if _, err := calendar.ParseDateKey(date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)
	}
	return s.Availability.ListSlots(stationID, date)
}

// PublishSlots replaces the full slot list for (station, date) with the
// given set, deduplicated and sorted ascending. Owner-only: removing or
// adding a single slot is a read-modify-write for the caller.
func (s *AvailabilityService) PublishSlots(ownerID, stationID, date string, slots []string) error {
	station, err := s.Stations.GetStation(stationID)
	if err != nil {
		return err
	}
	if station == nil {
		return fmt.Errorf("%w: station '%s'", apperr.ErrNotFound, stationID)
	}
	if station.OwnerID != ownerID {
		return fmt.Errorf("%w: station '%s' belongs to another owner", apperr.ErrForbidden, stationID)
	}
	if _, err := calendar.ParseDateKey(date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)
	}

	normalized, err := normalizeSlots(slots)
	if err != nil {
		return err
	}
	return s.Availability.PublishSlots(stationID, date, normalized)
}

// MonthGrid renders a station's month as calendar cells, marking each day
// bookable iff it is not in the past and has open slots.
func (s *AvailabilityService) MonthGrid(stationID string, year int, month time.Month, today time.Time) ([]entities.CalendarDay, error) {
	station, err := s.Stations.GetStation(stationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: station '%s'", apperr.ErrNotFound, stationID)
	}

	days := calendar.DaysInMonth(year, month)
	grid := make([]entities.CalendarDay, 0, len(days))
	for _, day := range days {
		if day == nil {
			grid = append(grid, entities.CalendarDay{})
			continue
		}
		key := calendar.DateKey(*day)
		slots, err := s.Availability.ListSlots(stationID, key)
		if err != nil {
			return nil, err
		}
		grid = append(grid, entities.CalendarDay{
			Date:     key,
			Bookable: calendar.IsBookable(slots, *day, today),
		})
	}
	return grid, nil
}

func normalizeSlots(slots []string) ([]string, error) {
	seen := make(map[string]bool, len(slots))
	normalized := make([]string, 0, len(slots))
	for _, label := range slots {
		if !timeLabelPattern.MatchString(label) {
			return nil, fmt.Errorf("%w: '%s' is not a valid HH:MM time", apperr.ErrValidation, label)
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		normalized = append(normalized, label)
	}
	sort.Strings(normalized)
	return normalized, nil
}
