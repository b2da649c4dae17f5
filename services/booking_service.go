package services

import (
	"fmt"

	"gorm.io/gorm"

	"broskii-backend/models"
)

// BookingService wraps *gorm.DB for the write-once booking table.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBooking inserts one booking row. Bookings are never updated or
// deleted by this service; downstream processes read them directly.
func (s *BookingService) CreateBooking(b *models.Booking) error {
	if err := s.DB.Create(b).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

var _ BookingStore = (*BookingService)(nil)
