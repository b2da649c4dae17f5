package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Trip is a catalog record. This service only reads trips; capacity
// accounting (booked_count) is maintained outside this codebase.
type Trip struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `gorm:"size:255" json:"title"`
	Subtitle string `gorm:"size:255" json:"subtitle"`
	Location string `gorm:"size:255" json:"location"`
	Dates    string `gorm:"size:255" json:"dates"`
	Duration string `gorm:"size:64" json:"duration"`

	PriceFull        float64 `gorm:"column:price_full" json:"price_full"`
	PriceDeposit     float64 `gorm:"column:price_deposit" json:"price_deposit"`
	CardPriceFull    float64 `gorm:"column:card_price_full" json:"card_price_full"`
	CardPriceDeposit float64 `gorm:"column:card_price_deposit" json:"card_price_deposit"`

	CardPaymentLinkFull    string `gorm:"column:card_payment_link_full;size:512" json:"card_payment_link_full"`
	CardPaymentLinkDeposit string `gorm:"column:card_payment_link_deposit;size:512" json:"card_payment_link_deposit"`
	BankTransferDetails    string `gorm:"column:bank_transfer_details;type:text" json:"bank_transfer_details"`

	DescriptionHTML string         `gorm:"column:description_html;type:text" json:"description_html"`
	Inclusions      datatypes.JSON `gorm:"column:inclusions" json:"inclusions"`

	Capacity    int    `gorm:"column:capacity" json:"capacity"`
	BookedCount int    `gorm:"column:booked_count" json:"booked_count"`
	Status      string `gorm:"column:status;size:32" json:"status"`
}

// SoldOut reports whether the trip can take no more bookings:
// booked_count has reached capacity, or the status flag marks it full.
func (t Trip) SoldOut() bool {
	// Capacity 0 means the row has no capacity configured; only the
	// status flag can close such a trip.
	if t.Capacity > 0 && t.BookedCount >= t.Capacity {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(t.Status), "full")
}
