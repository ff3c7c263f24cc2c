package service

import (
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/refund"
)

// StripeService is the payment collaborator. The booking core never talks
// to it directly: the checkout handler creates a session for a staged draft
// and the webhook's checkout.session.completed event is the
// payment-succeeded signal that triggers confirmation.
type StripeService struct {
	SuccessURL string
	CancelURL  string
}

func NewStripeService(successURL, cancelURL string) *StripeService {
	return &StripeService{SuccessURL: successURL, CancelURL: cancelURL}
}

// CreateCheckoutSession opens a Stripe Checkout session for the draft total.
// customerID travels as the client reference so the webhook can resolve
// which staged draft to confirm.
func (s *StripeService) CreateCheckoutSession(amount int64, currency, description, customerEmail, customerID string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
		ClientReferenceID: stripe.String(customerID),
	}
	if customerEmail != "" {
		params.CustomerEmail = stripe.String(customerEmail)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", "", err
	}
	return sess.URL, sess.ID, nil
}

// RefundPaymentBySessionID refunds the payment behind a checkout session.
// Used on cancellation; best effort from the booking core's point of view.
func (s *StripeService) RefundPaymentBySessionID(sessionID string) error {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return err
	}
	if sess.PaymentIntent == nil || sess.PaymentIntent.ID == "" {
		return fmt.Errorf("no PaymentIntent found for session %s", sessionID)
	}
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(sess.PaymentIntent.ID),
	}
	_, err = refund.New(params)
	return err
}
