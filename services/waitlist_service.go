package services

import (
	"fmt"

	"gorm.io/gorm"

	"broskii-backend/models"
)

// WaitlistService appends waitlist rows for sold-out trips.
// One row per submission; no de-duplication.
type WaitlistService struct {
	DB *gorm.DB
}

func NewWaitlistService(db *gorm.DB) *WaitlistService {
	return &WaitlistService{DB: db}
}

func (s *WaitlistService) Join(entry *models.WaitlistEntry) error {
	if err := s.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to join waitlist: %w", err)
	}
	return nil
}
