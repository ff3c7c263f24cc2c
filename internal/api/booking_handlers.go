package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"groomstation/internal/auth"
	"groomstation/internal/db"
	"groomstation/internal/entities"
	"groomstation/internal/service"
)

type BookingHandler struct {
	Bookings *service.BookingService
	Stripe   *service.StripeService
	Sender   *service.SenderService
}

func NewBookingHandler(bookings *service.BookingService, stripe *service.StripeService, sender *service.SenderService) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Stripe: stripe, Sender: sender}
}

// StageDraft validates and stages the customer's tentative selection.
func (h *BookingHandler) StageDraft(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	var req StageDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.Bookings.StageDraft(user.ID, service.StageDraftInput{
		StationID:    req.StationID,
		Date:         req.Date,
		Time:         req.Time,
		ServiceIDs:   req.ServiceIDs,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	draft, err := h.Bookings.GetDraft(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// Checkout opens a Stripe Checkout session for the staged draft. The
// webhook confirms the booking once the payment succeeds.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	draft, err := h.Bookings.GetDraft(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	description := "GroomStation booking at " + draft.StationName + " on " + draft.Date + " " + draft.Time
	url, sessionID, err := h.Stripe.CreateCheckoutSession(
		int64(draft.TotalPrice)*100, "usd", description, draft.ContactEmail, user.ID,
	)
	if err != nil {
		logrus.Errorf("Failed to create checkout session: %v", err)
		http.Error(w, "Could not start checkout", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, CheckoutResponse{URL: url, SessionID: sessionID})
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	bookings, err := h.Bookings.ListBookings(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]entities.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, entities.NewBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CancelBooking cancels the customer's confirmed booking, releases its slot
// and refunds the payment best effort.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	booking, err := h.Bookings.CancelBooking(mux.Vars(r)["id"], user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	if booking.PaymentRef != "" {
		if err := h.Stripe.RefundPaymentBySessionID(booking.PaymentRef); err != nil {
			logrus.Errorf("Refund for booking %s failed: %v", booking.ID, err)
		}
	}
	h.Sender.SendBookingEmail(booking, db.StatusCancelled)
	h.Sender.SendBookingSMS(booking, db.StatusCancelled)

	writeJSON(w, http.StatusOK, entities.NewBookingResponse(booking))
}
