package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"broskii-backend/models"
	"broskii-backend/utils"
)

// WizardStep is one of the four booking steps, in order.
type WizardStep int

const (
	StepPersonalInfo WizardStep = iota
	StepExperienceExtras
	StepWaiverRelease
	StepPayment
)

func (s WizardStep) String() string {
	switch s {
	case StepPersonalInfo:
		return "personalInfo"
	case StepExperienceExtras:
		return "experienceExtras"
	case StepWaiverRelease:
		return "waiverRelease"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

var ErrBookingSaveFailed = errors.New("booking_save_failed")

// ValidationErrors maps field name -> message, one entry per invalid
// field, so the client can render errors inline.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Option sets offered by the booking form.
var (
	experienceLevels = []string{"beginner", "intermediate", "advanced"}
	rentalChoices    = []string{"yes", "no-book-online", "bringing-own"}
	rentalPackages   = []string{"full-package", "skis-boots", "skis-only"}
	lessonChoices    = []string{"group", "private", "none"}
	roomChoices      = []string{"shared", "single"}
	travelChoices    = []string{"group-flight", "own-flight-group-transfer", "own-flight-own-transfer"}
	paymentChoices   = []string{"bankTransferFull", "bankTransferDeposit", "cardFull", "cardDeposit"}
)

func oneOf(value string, options []string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}

// BookingDraft is the in-progress form state for one prospective
// booking. Field names mirror the form; it lives only inside a wizard
// session and is discarded when the session ends.
type BookingDraft struct {
	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	City     string `json:"city"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	EmergencyContactName   string `json:"emergencyContactName"`
	EmergencyContactNumber string `json:"emergencyContactNumber"`

	SkiingExperience      string `json:"skiingExperience"`
	EquipmentRental       string `json:"equipmentRental"`
	EquipmentRentalOption string `json:"equipmentRentalOption"`
	Lessons               string `json:"lessons"`
	RoomPreference        string `json:"roomPreference"`
	TravelPlans           string `json:"travelPlans"`

	Waiver              bool   `json:"waiver"`
	ExtrasTerms         bool   `json:"extrasTerms"`
	Terms               bool   `json:"terms"`
	ElectronicSignature string `json:"electronicSignature"`

	SelectedPaymentOption string `json:"selectedPaymentOption"`

	// Set only through ConfirmPayment, never persisted.
	PaymentConfirmed bool `json:"paymentConfirmed"`
}

// DraftUpdate is a partial draft: only non-nil fields are applied.
type DraftUpdate struct {
	FullName *string `json:"fullName"`
	Age      *int    `json:"age"`
	City     *string `json:"city"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`

	EmergencyContactName   *string `json:"emergencyContactName"`
	EmergencyContactNumber *string `json:"emergencyContactNumber"`

	SkiingExperience      *string `json:"skiingExperience"`
	EquipmentRental       *string `json:"equipmentRental"`
	EquipmentRentalOption *string `json:"equipmentRentalOption"`
	Lessons               *string `json:"lessons"`
	RoomPreference        *string `json:"roomPreference"`
	TravelPlans           *string `json:"travelPlans"`

	Waiver              *bool   `json:"waiver"`
	ExtrasTerms         *bool   `json:"extrasTerms"`
	Terms               *bool   `json:"terms"`
	ElectronicSignature *string `json:"electronicSignature"`

	SelectedPaymentOption *string `json:"selectedPaymentOption"`
}

// BookingStore is the persistence dependency of the wizard commit.
type BookingStore interface {
	CreateBooking(b *models.Booking) error
}

// AdvanceResult reports the outcome of a forward transition.
type AdvanceResult struct {
	Step      WizardStep `json:"step"`
	Completed bool       `json:"completed"`

	// When the session's trip is sold out, advancement is replaced by
	// an invitation to join the waitlist.
	WaitlistRequired bool `json:"waitlistRequired"`
}

// Wizard is one booking session: the draft, the current step, and the
// one-time commit state. All methods are safe for concurrent use.
type Wizard struct {
	Token     string
	CreatedAt time.Time

	mu        sync.Mutex
	step      WizardStep
	draft     BookingDraft
	trip      *models.Trip
	committed bool

	store  BookingStore
	mailer Mailer
}

func NewWizard(token string, trip *models.Trip, store BookingStore, mailer Mailer) *Wizard {
	return &Wizard{
		Token:     token,
		CreatedAt: time.Now().UTC(),
		trip:      trip,
		store:     store,
		mailer:    mailer,
	}
}

func (w *Wizard) Step() WizardStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Draft() BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

func (w *Wizard) Trip() *models.Trip {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.trip
}

func (w *Wizard) Committed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.committed
}

// ApplyUpdate merges a partial draft into the session. Whenever the
// equipment-rental choice ends up anything but "yes", the rental
// sub-package is cleared so stale selections are never submitted.
func (w *Wizard) ApplyUpdate(u DraftUpdate) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if u.FullName != nil {
		w.draft.FullName = *u.FullName
	}
	if u.Age != nil {
		w.draft.Age = *u.Age
	}
	if u.City != nil {
		w.draft.City = *u.City
	}
	if u.Email != nil {
		w.draft.Email = *u.Email
	}
	if u.Phone != nil {
		w.draft.Phone = *u.Phone
	}
	if u.EmergencyContactName != nil {
		w.draft.EmergencyContactName = *u.EmergencyContactName
	}
	if u.EmergencyContactNumber != nil {
		w.draft.EmergencyContactNumber = *u.EmergencyContactNumber
	}
	if u.SkiingExperience != nil {
		w.draft.SkiingExperience = *u.SkiingExperience
	}
	if u.EquipmentRental != nil {
		w.draft.EquipmentRental = *u.EquipmentRental
	}
	if u.EquipmentRentalOption != nil {
		w.draft.EquipmentRentalOption = *u.EquipmentRentalOption
	}
	if u.Lessons != nil {
		w.draft.Lessons = *u.Lessons
	}
	if u.RoomPreference != nil {
		w.draft.RoomPreference = *u.RoomPreference
	}
	if u.TravelPlans != nil {
		w.draft.TravelPlans = *u.TravelPlans
	}
	if u.Waiver != nil {
		w.draft.Waiver = *u.Waiver
	}
	if u.ExtrasTerms != nil {
		w.draft.ExtrasTerms = *u.ExtrasTerms
	}
	if u.Terms != nil {
		w.draft.Terms = *u.Terms
	}
	if u.ElectronicSignature != nil {
		w.draft.ElectronicSignature = *u.ElectronicSignature
	}
	if u.SelectedPaymentOption != nil {
		w.draft.SelectedPaymentOption = *u.SelectedPaymentOption
	}

	if w.draft.EquipmentRental != "yes" {
		w.draft.EquipmentRentalOption = ""
	}
}

// ConfirmPayment records the explicit user confirmation that payment
// was made through the selected payment option.
func (w *Wizard) ConfirmPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !oneOf(w.draft.SelectedPaymentOption, paymentChoices) {
		return ValidationErrors{"selectedPaymentOption": "Please select a payment option first."}
	}
	w.draft.PaymentConfirmed = true
	return nil
}

// Advance validates the current step and moves forward. The waiver
// step additionally performs the one-time commit: the booking row must
// be written (failure blocks, no flag set, retry allowed) and the
// confirmation emails are sent best-effort. The payment step is the
// terminal transition, gated on the payment-confirmed flag.
func (w *Wizard) Advance() (AdvanceResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	res := AdvanceResult{Step: w.step}

	if w.trip != nil && w.trip.SoldOut() {
		res.WaitlistRequired = true
		return res, nil
	}

	switch w.step {
	case StepPersonalInfo:
		if errs := validatePersonalInfo(w.draft); len(errs) > 0 {
			return res, errs
		}

	case StepExperienceExtras:
		if errs := validateExperienceExtras(w.draft); len(errs) > 0 {
			return res, errs
		}

	case StepWaiverRelease:
		if errs := validateWaiverRelease(w.draft); len(errs) > 0 {
			return res, errs
		}
		if err := w.commitLocked(); err != nil {
			return res, err
		}

	case StepPayment:
		if !w.draft.PaymentConfirmed {
			return res, ValidationErrors{"paymentConfirmed": "You must confirm your payment before continuing."}
		}
		res.Completed = true
		return res, nil
	}

	w.step++
	res.Step = w.step
	return res, nil
}

// Retreat steps back without validation or side effects. Returns false
// when already on the first step.
func (w *Wizard) Retreat() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepPersonalInfo {
		return false
	}
	w.step--
	return true
}

// commitLocked persists the booking and notifies, at most once per
// session. Caller holds w.mu, which also serializes concurrent
// advances so a duplicate submission waits and then sees committed.
func (w *Wizard) commitLocked() error {
	if w.committed {
		return nil
	}

	booking := w.draft.toBooking(w.trip)
	if err := w.store.CreateBooking(&booking); err != nil {
		// Flag stays unset so the user can retry the same step.
		return fmt.Errorf("%w: %v", ErrBookingSaveFailed, err)
	}
	w.committed = true

	// Emails are best-effort: the durable record is the source of truth.
	if err := w.mailer.SendBookingConfirmation(booking); err != nil {
		log.Printf("booking confirmation email failed (non-blocking): %v", err)
	}
	if err := w.mailer.SendBookingNotification(booking); err != nil {
		log.Printf("booking notification email failed (non-blocking): %v", err)
	}
	return nil
}

func (d BookingDraft) toBooking(trip *models.Trip) models.Booking {
	var rentalOption *string
	if d.EquipmentRental == "yes" && d.EquipmentRentalOption != "" {
		opt := d.EquipmentRentalOption
		rentalOption = &opt
	}
	var paymentOption *string
	if d.SelectedPaymentOption != "" {
		opt := d.SelectedPaymentOption
		paymentOption = &opt
	}
	var tripID *string
	if trip != nil {
		id := trip.ID
		tripID = &id
	}

	return models.Booking{
		FullName:               strings.TrimSpace(d.FullName),
		Age:                    d.Age,
		City:                   strings.TrimSpace(d.City),
		Email:                  strings.TrimSpace(d.Email),
		PhoneNumber:            strings.TrimSpace(d.Phone),
		EmergencyContactName:   strings.TrimSpace(d.EmergencyContactName),
		EmergencyContactNumber: strings.TrimSpace(d.EmergencyContactNumber),
		SkiingExperienceLevel:  d.SkiingExperience,
		EquipmentRental:        d.EquipmentRental,
		EquipmentRentalOption:  rentalOption,
		Lessons:                d.Lessons,
		RoomPreference:         d.RoomPreference,
		TravelPlans:            d.TravelPlans,
		PaymentOption:          paymentOption,
		WaiverAgreed:           d.Waiver,
		ExtrasBalanceAdjusted:  d.ExtrasTerms,
		TermsAccepted:          d.Terms,
		ElectronicSignature:    strings.TrimSpace(d.ElectronicSignature),
		TripID:                 tripID,
	}
}

func validatePersonalInfo(d BookingDraft) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(d.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	switch {
	case d.Age == 0:
		errs["age"] = "Age is required"
	case d.Age < 18:
		errs["age"] = "Must be 18 or older"
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "City is required"
	}
	if !utils.IsValidEmail(d.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	return errs
}

func validateExperienceExtras(d BookingDraft) ValidationErrors {
	errs := ValidationErrors{}
	if !oneOf(d.SkiingExperience, experienceLevels) {
		errs["skiingExperience"] = "Please select your experience level"
	}
	if !oneOf(d.EquipmentRental, rentalChoices) {
		errs["equipmentRental"] = "Please select an equipment rental option"
	} else if d.EquipmentRental == "yes" && !oneOf(d.EquipmentRentalOption, rentalPackages) {
		errs["equipmentRentalOption"] = "Please select a rental package option."
	}
	if !oneOf(d.Lessons, lessonChoices) {
		errs["lessons"] = "Please select a lessons option"
	}
	if !oneOf(d.RoomPreference, roomChoices) {
		errs["roomPreference"] = "Please select a room preference"
	}
	if !oneOf(d.TravelPlans, travelChoices) {
		errs["travelPlans"] = "Please select your travel plans"
	}
	return errs
}

func validateWaiverRelease(d BookingDraft) ValidationErrors {
	errs := ValidationErrors{}
	if !d.Waiver {
		errs["waiver"] = "You must agree to the waiver and release"
	}
	if !d.ExtrasTerms {
		errs["extrasTerms"] = "You must acknowledge the extras balance adjustment"
	}
	if !d.Terms {
		errs["terms"] = "You must accept the terms and conditions"
	}
	if strings.TrimSpace(d.ElectronicSignature) == "" {
		errs["electronicSignature"] = "Electronic signature is required"
	}
	return errs
}
