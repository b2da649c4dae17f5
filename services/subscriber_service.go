package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"broskii-backend/models"
)

// SubscriberService appends newsletter signups.
type SubscriberService struct {
	DB *gorm.DB
}

func NewSubscriberService(db *gorm.DB) *SubscriberService {
	return &SubscriberService{DB: db}
}

func (s *SubscriberService) Subscribe(email string) (*models.Subscriber, error) {
	sub := &models.Subscriber{Email: strings.TrimSpace(email)}
	if err := s.DB.Create(sub).Error; err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}
