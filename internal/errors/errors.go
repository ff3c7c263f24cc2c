package errors

import "errors"

// Sentinel errors for the booking core. Handlers map these onto HTTP status
// codes; services wrap them with context via fmt.Errorf and %w.
var (
	// ErrValidation covers malformed input: bad time labels, bad dates,
	// empty slot lists where one is required. Caller-fixable, never retried.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSelection is returned when a staged draft does not resolve
	// to an open slot and real services of the station.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrSlotUnavailable is the expected contention outcome of ReserveSlot.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrBookingConflict is surfaced by ConfirmBooking when the slot was
	// taken between staging and confirmation.
	ErrBookingConflict = errors.New("booking conflict")

	// ErrNoDraft means ConfirmBooking was called with no staged selection
	// (never staged, already consumed, or expired).
	ErrNoDraft = errors.New("no draft selection staged")

	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrNotCancellable = errors.New("booking not cancellable")
	ErrNotCompletable = errors.New("booking not completable")
)
