package models

import "time"

// WaitlistEntry is one waitlist form submission for a sold-out trip.
// One row per submission; no de-duplication.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TripID   *string `gorm:"column:trip_id;size:36;index" json:"trip_id"`
	FullName string  `gorm:"column:full_name;size:255" json:"full_name"`
	Email    string  `gorm:"column:email;size:255" json:"email"`
	Phone    *string `gorm:"column:phone;size:64" json:"phone"`
}

func (WaitlistEntry) TableName() string { return "waitlist" }
