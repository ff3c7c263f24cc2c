package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"groomstation/internal/db"
)

// SenderService sends booking status notifications. Both channels are best
// effort: a failed notification never fails the booking operation.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendBookingEmail emails the customer about a booking status change.
// Fire-and-forget; runs the SendGrid call on its own goroutine.
func (s *SenderService) SendBookingEmail(booking *db.Booking, status string) {
	if booking.ContactEmail == "" {
		return
	}

	subject := fmt.Sprintf("Your GroomStation booking is %s - %s", status, booking.StationName)

	var services []string
	for _, svc := range booking.Services {
		services = append(services, fmt.Sprintf("- %s (%d min): $%d", svc.Name, svc.DurationMinutes, svc.Price))
	}
	body := fmt.Sprintf(
		"Hello,\n\nYour booking at %s is %s.\n\n"+
			"Booking Details:\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Services:\n%s\n"+
			"Total: $%d\n\n"+
			"Thank you for choosing GroomStation.",
		booking.StationName, status, booking.Date, booking.Time,
		strings.Join(services, "\n"), booking.TotalPrice,
	)

	go func(toEmail, subject, body, bookingID string) {
		if err := sendEmailWithSendGrid(toEmail, subject, body); err != nil {
			logrus.Errorf("Failed to send email for booking %s: %v", bookingID, err)
		}
	}(booking.ContactEmail, subject, body, booking.ID)
}

// SendBookingSMS texts the customer about a booking status change.
func (s *SenderService) SendBookingSMS(booking *db.Booking, status string) {
	if booking.ContactPhone == "" {
		return
	}

	message := fmt.Sprintf("GroomStation: your booking at %s on %s %s is %s. Details in your email.",
		booking.StationName, booking.Date, booking.Time, status)

	go func(toPhone, message, bookingID string) {
		if err := sendSMS(toPhone, message); err != nil {
			logrus.Errorf("Failed to send SMS for booking %s: %v", bookingID, err)
		}
	}(booking.ContactPhone, message, booking.ID)
}

func sendEmailWithSendGrid(toEmail, subject, plainTextContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "GroomStation"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email through SendGrid failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("Twilio credentials are not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		logrus.Warnf("Destination number '%s' is not E.164, the SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending SMS failed: %w", err)
	}
	return nil
}
