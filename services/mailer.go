package services

import (
	"broskii-backend/models"
	"broskii-backend/utils"
)

// Mailer is the outbound-email dependency of the wizard and the
// email-sending handlers. Injected so tests can fake delivery.
type Mailer interface {
	SendBookingConfirmation(b models.Booking) error
	SendBookingNotification(b models.Booking) error
	SendContactMessage(name, email, phone, subject, message string) error
}

// SMTPMailer sends through the SMTP account configured in the
// environment (falls back to mock logging, see utils).
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer { return &SMTPMailer{} }

func (m *SMTPMailer) SendBookingConfirmation(b models.Booking) error {
	return utils.SendBookingConfirmationEmail(b)
}

func (m *SMTPMailer) SendBookingNotification(b models.Booking) error {
	return utils.SendBookingNotificationEmail(b)
}

func (m *SMTPMailer) SendContactMessage(name, email, phone, subject, message string) error {
	return utils.SendContactMessageEmail(name, email, phone, subject, message)
}
