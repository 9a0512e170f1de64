// File: services/notification/mailer.go
package notification

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"cyfairmaids/config"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// Mailer delivers customer-facing email.
type Mailer interface {
	SendBookingConfirmation(booking *models.Booking, email string) error
	SendBookingReminder(booking *models.Booking, email string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns the SMTP mailer when email is enabled, a no-op mailer
// otherwise.
func NewMailer() Mailer {
	cfg := config.AppConfig
	if !cfg.EmailEnabled || cfg.SMTPHost == "" {
		return &NoopMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendBookingConfirmation(booking *models.Booking, email string) error {
	body := fmt.Sprintf(
		"Your cleaning is booked!\n\nDate: %s\nTime: %s\nTotal: $%.2f\n\nBooking reference: %s\n",
		booking.BookingDate, booking.TimeSlot, booking.TotalAmount, booking.ID)
	return m.send(email, "Booking Confirmed", body)
}

func (m *SMTPMailer) SendBookingReminder(booking *models.Booking, email string) error {
	body := fmt.Sprintf(
		"A reminder about your cleaning tomorrow.\n\nDate: %s\nTime: %s\n\nBooking reference: %s\n",
		booking.BookingDate, booking.TimeSlot, booking.ID)
	return m.send(email, "Your Cleaning Is Tomorrow", body)
}

// NoopMailer logs instead of sending. Used when email is not configured.
type NoopMailer struct{}

func (m *NoopMailer) SendBookingConfirmation(booking *models.Booking, email string) error {
	utils.GetLogger().Info("Email disabled, skipping confirmation",
		zap.String("bookingID", booking.ID), zap.String("email", email))
	return nil
}

func (m *NoopMailer) SendBookingReminder(booking *models.Booking, email string) error {
	utils.GetLogger().Info("Email disabled, skipping reminder",
		zap.String("bookingID", booking.ID), zap.String("email", email))
	return nil
}
