package models

import (
	"time"
)

// Booking is the durable record written exactly once per wizard session,
// at the waiver step. It is never updated or deleted by this service.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FullName    string `gorm:"column:full_name;size:255" json:"full_name"`
	Age         int    `gorm:"column:age" json:"age"`
	City        string `gorm:"column:city;size:255" json:"city"`
	Email       string `gorm:"column:email;size:255" json:"email"`
	PhoneNumber string `gorm:"column:phone_number;size:64" json:"phone_number"`

	EmergencyContactName   string `gorm:"column:emergency_contact_name;size:255" json:"emergency_contact_name"`
	EmergencyContactNumber string `gorm:"column:emergency_contact_number;size:64" json:"emergency_contact_number"`

	SkiingExperienceLevel string  `gorm:"column:skiing_experience_level;size:64" json:"skiing_experience_level"`
	EquipmentRental       string  `gorm:"column:equipment_rental;size:64" json:"equipment_rental"`
	EquipmentRentalOption *string `gorm:"column:equipment_rental_option;size:64" json:"equipment_rental_option"`
	Lessons               string  `gorm:"column:lessons;size:64" json:"lessons"`
	RoomPreference        string  `gorm:"column:room_preference;size:64" json:"room_preference"`
	TravelPlans           string  `gorm:"column:travel_plans;size:64" json:"travel_plans"`

	PaymentOption *string `gorm:"column:payment_option;size:64" json:"payment_option"`

	WaiverAgreed          bool   `gorm:"column:waiver_agreed" json:"waiver_agreed"`
	ExtrasBalanceAdjusted bool   `gorm:"column:extras_balance_adjusted" json:"extras_balance_adjusted"`
	TermsAccepted         bool   `gorm:"column:terms_accepted" json:"terms_accepted"`
	ElectronicSignature   string `gorm:"column:electronic_signature;size:255" json:"electronic_signature"`

	// Nullable for legacy single-trip bookings that predate the trip catalog.
	TripID *string `gorm:"column:trip_id;size:36;index" json:"trip_id"`
}

// TableName keeps the singular table name the data store already uses.
func (Booking) TableName() string { return "booking" }
