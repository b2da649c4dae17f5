package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"broskii-backend/models"
)

var ErrTripNotFound = errors.New("trip_not_found")

// TripService reads the trip catalog. Trips are seeded at migration
// time and maintained outside this service; nothing here writes them.
type TripService struct {
	DB *gorm.DB
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{DB: db}
}

func (s *TripService) GetByID(id string) (*models.Trip, error) {
	var trip models.Trip
	if err := s.DB.First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to retrieve trip: %w", err)
	}
	return &trip, nil
}

func (s *TripService) GetAll() ([]models.Trip, error) {
	var trips []models.Trip
	if err := s.DB.Order("created_at DESC").Find(&trips).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve trips: %w", err)
	}
	return trips, nil
}
