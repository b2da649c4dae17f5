package models

import "time"

// Subscriber is a newsletter signup. Append-only.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email string `gorm:"column:email;size:255" json:"email"`
}

func (Subscriber) TableName() string { return "subscribers" }
