package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"groomstation/internal/calendar"
	"groomstation/internal/db"
	"groomstation/internal/entities"
	apperr "groomstation/internal/errors"
	"groomstation/internal/repository"
)

// BookingService drives a booking's life from staged draft to terminal
// state. Confirmation is the only way a Booking comes into existence.
type BookingService struct {
	Stations     repository.StationRepository
	Availability repository.AvailabilityRepository
	Bookings     repository.BookingRepository
	Drafts       *DraftStore
	Reward       RewardPolicy
}

func NewBookingService(
	stations repository.StationRepository,
	availability repository.AvailabilityRepository,
	bookings repository.BookingRepository,
	drafts *DraftStore,
	reward RewardPolicy,
) *BookingService {
	return &BookingService{
		Stations:     stations,
		Availability: availability,
		Bookings:     bookings,
		Drafts:       drafts,
		Reward:       reward,
	}
}

// StageDraftInput carries a customer's tentative selection. Contact fields
// are optional and only used for notifications.
type StageDraftInput struct {
	StationID    string
	Date         string
	Time         string
	ServiceIDs   []string
	ContactEmail string
	ContactPhone string
}

// StageDraft validates the selection against the live catalog and the
// current availability listing, computes totals and stages the draft,
// replacing any prior draft of the customer.
func (s *BookingService) StageDraft(customerID string, in StageDraftInput) (*entities.DraftSelection, error) {
	if _, err := calendar.ParseDateKey(in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)
	}
	if len(in.ServiceIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one service is required", apperr.ErrInvalidSelection)
	}

	station, err := s.Stations.GetStation(in.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: station '%s'", apperr.ErrNotFound, in.StationID)
	}

	// Re-check the slot at staging time, not just at display time.
	slots, err := s.Availability.ListSlots(in.StationID, in.Date)
	if err != nil {
		return nil, err
	}
	if !containsLabel(slots, in.Time) {
		return nil, fmt.Errorf("%w: %s %s is not an open slot", apperr.ErrInvalidSelection, in.Date, in.Time)
	}

	services, allResolved := ResolveSelection(station.Services, in.ServiceIDs)
	if !allResolved {
		return nil, fmt.Errorf("%w: unknown service for station '%s'", apperr.ErrInvalidSelection, in.StationID)
	}

	totals := AggregateSelection(station.Services, in.ServiceIDs)
	draft := &entities.DraftSelection{
		StationID:            station.ID,
		StationName:          station.Name,
		Date:                 in.Date,
		Time:                 in.Time,
		Services:             services,
		TotalPrice:           totals.TotalPrice,
		TotalDurationMinutes: totals.TotalDurationMinutes,
		ContactEmail:         in.ContactEmail,
		ContactPhone:         in.ContactPhone,
	}
	s.Drafts.Put(customerID, draft)

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"station_id":  station.ID,
		"date":        in.Date,
		"time":        in.Time,
	}).Info("Draft selection staged")
	return draft, nil
}

// GetDraft returns the customer's staged selection, if any.
func (s *BookingService) GetDraft(customerID string) (*entities.DraftSelection, error) {
	draft, ok := s.Drafts.Get(customerID)
	if !ok {
		return nil, apperr.ErrNoDraft
	}
	return draft, nil
}

// ConfirmBooking turns the staged draft into a confirmed booking. The caller
// must have obtained the external payment-succeeded signal first; paymentRef
// is its opaque token. Steps are atomic as a unit: the slot is reserved,
// the booking materialized and persisted, the draft cleared. If persisting
// fails after the reserve succeeded, the slot is released back.
func (s *BookingService) ConfirmBooking(customerID, paymentRef string) (*db.Booking, error) {
	draft, ok := s.Drafts.Get(customerID)
	if !ok {
		return nil, apperr.ErrNoDraft
	}

	if err := s.Availability.ReserveSlot(draft.StationID, draft.Date, draft.Time); err != nil {
		if errors.Is(err, apperr.ErrSlotUnavailable) {
			return nil, fmt.Errorf("%w: %s %s at station '%s'", apperr.ErrBookingConflict, draft.Date, draft.Time, draft.StationID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	booking := &db.Booking{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		StationID:    draft.StationID,
		StationName:  draft.StationName,
		Date:         draft.Date,
		Time:         draft.Time,
		Services:     snapshotServices(draft.Services),
		TotalPrice:   draft.TotalPrice,
		Status:       db.StatusConfirmed,
		PaymentRef:   paymentRef,
		ContactEmail: draft.ContactEmail,
		ContactPhone: draft.ContactPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	booking.RewardIssued = s.Reward.Decide(booking)

	if err := s.Bookings.CreateBooking(booking); err != nil {
		// Compensating action: the slot must not stay lost.
		if relErr := s.Availability.ReleaseSlot(draft.StationID, draft.Date, draft.Time); relErr != nil {
			logrus.WithFields(logrus.Fields{
				"station_id": draft.StationID,
				"date":       draft.Date,
				"time":       draft.Time,
			}).Errorf("Failed to release slot after persist failure, recovery sweep will reclaim it: %v", relErr)
		}
		return nil, fmt.Errorf("error persisting booking: %w", err)
	}

	if err := s.Availability.ClearHold(draft.StationID, draft.Date, draft.Time); err != nil {
		// The sweep matches holds against bookings, so a leftover hold for a
		// persisted booking is harmless.
		logrus.Warnf("Failed to clear slot hold for booking %s: %v", booking.ID, err)
	}
	s.Drafts.Clear(customerID)

	logrus.WithFields(logrus.Fields{
		"booking_id":    booking.ID,
		"customer_id":   customerID,
		"station_id":    booking.StationID,
		"date":          booking.Date,
		"time":          booking.Time,
		"total_price":   booking.TotalPrice,
		"reward_issued": booking.RewardIssued,
	}).Info("Booking confirmed")
	return booking, nil
}

// CancelBooking sets a confirmed booking of the customer to cancelled and
// returns its slot to the pool. Terminal states are not cancellable.
func (s *BookingService) CancelBooking(bookingID, customerID string) (*db.Booking, error) {
	booking, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking '%s'", apperr.ErrNotFound, bookingID)
	}
	if booking.CustomerID != customerID {
		return nil, fmt.Errorf("%w: booking '%s' belongs to another customer", apperr.ErrForbidden, bookingID)
	}
	if booking.Status != db.StatusConfirmed {
		return nil, fmt.Errorf("%w: status is '%s'", apperr.ErrNotCancellable, booking.Status)
	}

	if err := s.Bookings.UpdateBookingStatus(bookingID, db.StatusCancelled); err != nil {
		return nil, err
	}
	if err := s.Availability.ReleaseSlot(booking.StationID, booking.Date, booking.Time); err != nil {
		return nil, fmt.Errorf("booking cancelled but slot release failed: %w", err)
	}
	booking.Status = db.StatusCancelled

	logrus.WithFields(logrus.Fields{
		"booking_id":  bookingID,
		"customer_id": customerID,
	}).Info("Booking cancelled")
	return booking, nil
}

// CompleteBooking marks a confirmed booking as delivered. Only the owner of
// the booking's station may complete it. The slot is consumed, not released.
func (s *BookingService) CompleteBooking(bookingID, ownerID string) (*db.Booking, error) {
	booking, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking '%s'", apperr.ErrNotFound, bookingID)
	}

	station, err := s.Stations.GetStation(booking.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil || station.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: booking '%s' is not at a station of this owner", apperr.ErrForbidden, bookingID)
	}
	if booking.Status != db.StatusConfirmed {
		return nil, fmt.Errorf("%w: status is '%s'", apperr.ErrNotCompletable, booking.Status)
	}

	if err := s.Bookings.UpdateBookingStatus(bookingID, db.StatusCompleted); err != nil {
		return nil, err
	}
	booking.Status = db.StatusCompleted
	return booking, nil
}

// ListBookings returns the customer's bookings in creation order.
func (s *BookingService) ListBookings(customerID string) ([]*db.Booking, error) {
	return s.Bookings.ListBookingsByCustomer(customerID)
}

func snapshotServices(services []db.Service) []db.BookedService {
	snapshot := make([]db.BookedService, 0, len(services))
	for _, s := range services {
		snapshot = append(snapshot, db.BookedService{
			ServiceID:       s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	return snapshot
}

func containsLabel(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
