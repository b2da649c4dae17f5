package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"broskii-backend/models"
	"broskii-backend/services"
)

// BookingConfirmationPayload is the flat body the booking flow posts
// when it wants the confirmation emails re-sent outside a wizard
// session (legacy client flow).
type BookingConfirmationPayload struct {
	FullName               string `json:"fullName"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	City                   string `json:"city"`
	Age                    int    `json:"age"`
	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`
	SkiingExperience       string `json:"skiingExperience"`
	EquipmentRental        string `json:"equipmentRental"`
	EquipmentRentalOption  string `json:"equipmentRentalOption"`
	Lessons                string `json:"lessons"`
	RoomPreference         string `json:"roomPreference"`
	TravelPlans            string `json:"travelPlans"`
	SelectedPaymentOption  string `json:"selectedPaymentOption"`
	Waiver                 bool   `json:"waiver"`
	ExtrasTerms            bool   `json:"extrasTerms"`
	Terms                  bool   `json:"terms"`
	ElectronicSignature    string `json:"electronicSignature"`
}

// BookingEmailController sends the guest confirmation plus the
// operator notification for one booking.
type BookingEmailController struct {
	Mailer services.Mailer
}

func NewBookingEmailController(mailer services.Mailer) *BookingEmailController {
	return &BookingEmailController{Mailer: mailer}
}

func (ctrl *BookingEmailController) SendConfirmation(c *gin.Context) {
	var p BookingConfirmationPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		log.Printf("invalid booking confirmation payload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}

	booking := p.toBooking()
	if err := ctrl.Mailer.SendBookingConfirmation(booking); err != nil {
		log.Printf("booking confirmation email failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}
	if err := ctrl.Mailer.SendBookingNotification(booking); err != nil {
		log.Printf("booking notification email failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Emails sent"})
}

func (p BookingConfirmationPayload) toBooking() models.Booking {
	var rentalOption *string
	if opt := strings.TrimSpace(p.EquipmentRentalOption); opt != "" && !strings.EqualFold(opt, "N/A") {
		rentalOption = &opt
	}
	var paymentOption *string
	if opt := strings.TrimSpace(p.SelectedPaymentOption); opt != "" {
		paymentOption = &opt
	}

	return models.Booking{
		FullName:               p.FullName,
		Age:                    p.Age,
		City:                   p.City,
		Email:                  p.Email,
		PhoneNumber:            p.Phone,
		EmergencyContactName:   p.EmergencyContactName,
		EmergencyContactNumber: p.EmergencyContactNumber,
		SkiingExperienceLevel:  p.SkiingExperience,
		EquipmentRental:        p.EquipmentRental,
		EquipmentRentalOption:  rentalOption,
		Lessons:                p.Lessons,
		RoomPreference:         p.RoomPreference,
		TravelPlans:            p.TravelPlans,
		PaymentOption:          paymentOption,
		WaiverAgreed:           p.Waiver,
		ExtrasBalanceAdjusted:  p.ExtrasTerms,
		TermsAccepted:          p.Terms,
		ElectronicSignature:    p.ElectronicSignature,
	}
}
