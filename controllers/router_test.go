package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"broskii-backend/controllers"
	"broskii-backend/models"
	"broskii-backend/routes"
	"broskii-backend/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type contactCall struct {
	name, email, phone, subject, message string
}

type fakeMailer struct {
	confirmations []models.Booking
	notifications []models.Booking
	contacts      []contactCall

	confirmErr error
	notifyErr  error
	contactErr error
}

func (m *fakeMailer) SendBookingConfirmation(b models.Booking) error {
	if m.confirmErr != nil {
		return m.confirmErr
	}
	m.confirmations = append(m.confirmations, b)
	return nil
}

func (m *fakeMailer) SendBookingNotification(b models.Booking) error {
	if m.notifyErr != nil {
		return m.notifyErr
	}
	m.notifications = append(m.notifications, b)
	return nil
}

func (m *fakeMailer) SendContactMessage(name, email, phone, subject, message string) error {
	if m.contactErr != nil {
		return m.contactErr
	}
	m.contacts = append(m.contacts, contactCall{name, email, phone, subject, message})
	return nil
}

type fakeLister struct {
	images []services.GalleryImage
	err    error
}

func (l *fakeLister) ListImages(ctx context.Context) ([]services.GalleryImage, error) {
	return l.images, l.err
}

type fakeStore struct {
	bookings []models.Booking
	err      error
}

func (s *fakeStore) CreateBooking(b *models.Booking) error {
	if s.err != nil {
		return s.err
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

// newTestRouter builds the full production route table with in-memory
// doubles for the external dependencies. Database-backed endpoints get
// real services over a nil handle; tests exercising them stay on the
// validation paths that never reach the database.
func newTestRouter(lister services.ImageLister, mailer services.Mailer, store services.BookingStore) *gin.Engine {
	trips := services.NewTripService(nil)
	wizards := services.NewWizardService(store, mailer, trips)

	return routes.SetupRouter(
		controllers.NewGalleryController(lister),
		controllers.NewBookingEmailController(mailer),
		controllers.NewContactController(mailer),
		controllers.NewWizardController(wizards),
		controllers.NewWaitlistController(services.NewWaitlistService(nil)),
		controllers.NewSubscriberController(services.NewSubscriberService(nil)),
		controllers.NewTripController(trips),
	)
}

func perform(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
