package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"broskii-backend/models"
	"broskii-backend/utils"
)

var ErrSessionNotFound = errors.New("session_not_found")

// Session lifetime matches the booking-link expiry used elsewhere in
// the product; an abandoned draft holds no durable state.
const sessionTTL = 24 * time.Hour

// WizardService holds the live wizard sessions, keyed by token.
// Sessions are in-process only: a draft is ephemeral per-visitor state
// and is simply lost on restart, by design.
type WizardService struct {
	mu       sync.Mutex
	sessions map[string]*Wizard
	ttl      time.Duration

	store  BookingStore
	mailer Mailer
	trips  *TripService
}

func NewWizardService(store BookingStore, mailer Mailer, trips *TripService) *WizardService {
	return &WizardService{
		sessions: make(map[string]*Wizard),
		ttl:      sessionTTL,
		store:    store,
		mailer:   mailer,
		trips:    trips,
	}
}

// StartSession creates a wizard, optionally bound to a trip from the
// catalog. An unknown trip id is an error; an empty id starts a
// trip-less session (legacy single-trip flow).
func (s *WizardService) StartSession(tripID string) (*Wizard, error) {
	var trip *models.Trip
	if tripID != "" {
		t, err := s.trips.GetByID(tripID)
		if err != nil {
			return nil, err
		}
		trip = t
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	w := NewWizard(token, trip, s.store, s.mailer)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	s.sessions[token] = w
	return w, nil
}

// Get returns the live session for a token, purging expired ones.
func (s *WizardService) Get(token string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()

	w, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// End discards a session (completion or navigation away).
func (s *WizardService) End(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *WizardService) purgeExpiredLocked() {
	cutoff := time.Now().UTC().Add(-s.ttl)
	for token, w := range s.sessions {
		if w.CreatedAt.Before(cutoff) {
			delete(s.sessions, token)
		}
	}
}
