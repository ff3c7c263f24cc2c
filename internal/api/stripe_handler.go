package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"groomstation/internal/db"
	apperr "groomstation/internal/errors"
	"groomstation/internal/service"
)

// StripeWebhookHandler consumes the payment collaborator's events.
// checkout.session.completed is the proof-of-payment signal that turns the
// customer's staged draft into a confirmed booking.
type StripeWebhookHandler struct {
	StripeSecret string
	Bookings     *service.BookingService
	Sender       *service.SenderService
}

func NewStripeWebhookHandler(stripeSecret string, bookings *service.BookingService, sender *service.SenderService) *StripeWebhookHandler {
	return &StripeWebhookHandler{StripeSecret: stripeSecret, Bookings: bookings, Sender: sender}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logrus.Errorf("Error reading webhook body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		logrus.Errorf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			logrus.Errorf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if sess.ClientReferenceID == "" {
			logrus.Error("checkout.session.completed without client reference")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		booking, err := h.Bookings.ConfirmBooking(sess.ClientReferenceID, sess.ID)
		if err != nil {
			// A conflict here means the slot was taken between staging and
			// payment; the customer keeps their money via the refund the
			// support flow issues, and must pick another slot. Acknowledge
			// the event either way so Stripe stops retrying.
			if errors.Is(err, apperr.ErrBookingConflict) || errors.Is(err, apperr.ErrNoDraft) {
				logrus.Warnf("Payment completed but booking not confirmable for customer %s: %v", sess.ClientReferenceID, err)
				w.WriteHeader(http.StatusOK)
				return
			}
			logrus.Errorf("Error confirming booking for customer %s: %v", sess.ClientReferenceID, err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		h.Sender.SendBookingEmail(booking, db.StatusConfirmed)
		h.Sender.SendBookingSMS(booking, db.StatusConfirmed)

	default:
		logrus.Debugf("Unhandled event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}
