package utils

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"broskii-backend/models"
)

// Fixed addresses used by the booking and contact flows. The sender
// domain follows the current broskii.co setup; flagged for product
// confirmation after the domain migration.
const (
	OperatorEmail = "salaam@broskii.co"
	alertsFrom    = "Broskii Alerts <info@broskii.co>"
	websiteFrom   = "Broskii Website <info@broskii.co>"
)

func safeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orNAPtr(s *string) string {
	if s == nil {
		return "N/A"
	}
	return orNA(*s)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// sendMultipartEmail builds a multipart/alternative MIME message and
// sends it over SMTP. When SMTP env vars are absent it logs a mock send
// instead, so local dev works without a mail account.
func sendMultipartEmail(fromHeader, recipient, subject, plainBody, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	recipient = safeHeader(recipient)
	subject = safeHeader(subject)

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	boundary := "----=_BROSKII_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", fromHeader))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}

	log.Printf("Email sent to %s (%s)", recipient, subject)
	return nil
}

// SendBookingConfirmationEmail sends the guest-facing trip confirmation.
func SendBookingConfirmationEmail(b models.Booking) error {
	name := safeHeader(b.FullName)
	subject := "Broskii Trip Booking Confirmation"

	plainBody := fmt.Sprintf(
		"As-salamu alaykum %s,\n\n"+
			"We're excited to confirm your spot on the upcoming Broskii trip.\n\n"+
			"Payment Summary:\n"+
			" - If you've paid a deposit, you will receive a payment link for the remaining balance 12 weeks before the trip. Please ensure all payments are completed 10 weeks before departure.\n"+
			" - If you've paid in full, you're all set — unless you selected extras when booking, in which case we'll send you the pricing details to confirm the add ons.\n\n"+
			"What Happens Next:\n"+
			" - You'll be added to the Broskii WhatsApp group for updates, packing tips and travel reminders.\n"+
			" - A few weeks before departure you'll receive a comprehensive information pack.\n\n"+
			"If you have any questions, just reply to this email or message us directly.\n\n"+
			"We look forward to having you with us,\nThe Broskii Team\nwww.broskii.co",
		name,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Broskii Booking Confirmation</title>
<style>
body { background:#FFFEFA; font-family:Arial, Helvetica, sans-serif; color:#263c43; }
.container { max-width:600px; margin:20px auto; }
.card { background:#fff; border-radius:12px; overflow:hidden; box-shadow:0 2px 8px rgba(0,0,0,0.1); padding:30px; }
h3 { color:#007CB0; }
.footer { background:#97cfe6; padding:20px; text-align:center; font-size:14px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Broskii Trip Confirmed</h2>
    <p><em>Let the countdown begin!</em></p>
    <p>As-salamu alaykum <strong>%s</strong>,</p>
    <p>We're excited to confirm your spot on the upcoming <strong>Broskii</strong> trip.</p>
    <h3>Payment Summary</h3>
    <ul>
      <li>If you've <strong>paid a deposit</strong>, you will receive a payment link for the remaining balance <strong>12 weeks before the trip</strong>. Please ensure all payments are completed <strong>10 weeks before departure</strong>.</li>
      <li>If you've <strong>paid in full</strong>, you're all set — unless you selected extras when booking, in which case we'll send you the pricing details to confirm the add ons.</li>
    </ul>
    <h3>What Happens Next</h3>
    <ul>
      <li>You'll be added to the <strong>Broskii WhatsApp group</strong> for updates, packing tips, travel reminders and more.</li>
      <li>A few weeks before departure you'll receive a <strong>comprehensive information pack</strong> with everything you need to know.</li>
    </ul>
    <p>If you have any questions, just reply to this email or message us directly.</p>
    <p>We look forward to having you with us,<br><strong>The Broskii Team</strong></p>
  </div>
  <div class="footer">
    <a href="https://www.broskii.co">www.broskii.co</a> &middot;
    <a href="mailto:salaam@broskii.co">salaam@broskii.co</a>
  </div>
</div>
</body>
</html>`, name)

	return sendMultipartEmail(alertsFrom, b.Email, subject, plainBody, htmlBody)
}

// SendBookingNotificationEmail sends the operator-facing new-booking
// summary, one field per line.
func SendBookingNotificationEmail(b models.Booking) error {
	name := safeHeader(b.FullName)
	subject := fmt.Sprintf("New Booking from %s", name)
	submitted := time.Now().Format("02 Jan 2006 15:04:05")

	age := "N/A"
	if b.Age > 0 {
		age = fmt.Sprintf("%d", b.Age)
	}

	lines := []struct{ label, value string }{
		{"Name", orNA(b.FullName)},
		{"Email", orNA(b.Email)},
		{"Phone", orNA(b.PhoneNumber)},
		{"City", orNA(b.City)},
		{"Age", age},
		{"Emergency Contact Name", orNA(b.EmergencyContactName)},
		{"Emergency Contact Number", orNA(b.EmergencyContactNumber)},
		{"Experience Level", orNA(b.SkiingExperienceLevel)},
		{"Equipment Rental", orNA(b.EquipmentRental)},
		{"Rental Option", orNAPtr(b.EquipmentRentalOption)},
		{"Lessons", orNA(b.Lessons)},
		{"Room Preference", orNA(b.RoomPreference)},
		{"Travel Plans", orNA(b.TravelPlans)},
		{"Payment Option", orNAPtr(b.PaymentOption)},
		{"Waiver Agreed", yesNo(b.WaiverAgreed)},
		{"Extras Adjusted", yesNo(b.ExtrasBalanceAdjusted)},
		{"Terms Accepted", yesNo(b.TermsAccepted)},
		{"Electronic Signature", orNA(b.ElectronicSignature)},
		{"Submitted", submitted},
	}

	var plainBody strings.Builder
	plainBody.WriteString("New Ski Trip Booking\n\n")
	var htmlBody strings.Builder
	htmlBody.WriteString("<h2>New Ski Trip Booking</h2>\n")
	for _, l := range lines {
		plainBody.WriteString(fmt.Sprintf("%s: %s\n", l.label, l.value))
		htmlBody.WriteString(fmt.Sprintf("<p><strong>%s:</strong> %s</p>\n", l.label, html.EscapeString(l.value)))
	}
	plainBody.WriteString("\nFull data also stored in the booking table.\n")
	htmlBody.WriteString(`<hr /><p style="font-size:12px; color:#666;">Full data also stored in the booking table.</p>`)

	return sendMultipartEmail(alertsFrom, OperatorEmail, subject, plainBody.String(), htmlBody.String())
}

// SendContactMessageEmail forwards a contact-form message to the operator.
func SendContactMessageEmail(name, email, phone, subject, message string) error {
	mailSubject := fmt.Sprintf("New Contact Message: %s", safeHeader(subject))

	plainBody := fmt.Sprintf(
		"New message from Broskii website contact form\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\nMessage:\n%s\n",
		name, email, orNA(phone), subject, message,
	)

	htmlBody := fmt.Sprintf(
		"<h2>New message from Broskii website contact form</h2>\n"+
			"<p><strong>Name:</strong> %s</p>\n"+
			"<p><strong>Email:</strong> %s</p>\n"+
			"<p><strong>Phone:</strong> %s</p>\n"+
			"<p><strong>Subject:</strong> %s</p>\n"+
			"<p><strong>Message:</strong><br>%s</p>\n"+
			`<hr /><p style="font-size:12px; color:#666;">Sent via Broskii website contact form</p>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(orNA(phone)), html.EscapeString(subject),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"),
	)

	return sendMultipartEmail(websiteFrom, OperatorEmail, mailSubject, plainBody, htmlBody)
}
