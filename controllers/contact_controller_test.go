package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_SendMessage(t *testing.T) {
	mailer := &fakeMailer{}
	r := newTestRouter(&fakeLister{}, mailer, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Ali Hassan",
		"email":   "ali@example.com",
		"phone":   "07123456789",
		"subject": "Hi",
		"message": "Looking forward to the trip!",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message sent", decode(t, w)["message"])

	require.Len(t, mailer.contacts, 1)
	call := mailer.contacts[0]
	assert.Equal(t, "Ali Hassan", call.name)
	assert.Equal(t, "ali@example.com", call.email)
	assert.Equal(t, "07123456789", call.phone)
	assert.Equal(t, "Hi", call.subject)
	assert.Equal(t, "Looking forward to the trip!", call.message)
}

func TestContact_MissingFields(t *testing.T) {
	mailer := &fakeMailer{}
	r := newTestRouter(&fakeLister{}, mailer, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Ali Hassan",
		"email":   "ali@example.com",
		"subject": "Hi",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["error"])
	assert.Empty(t, mailer.contacts)
}

func TestContact_PhoneIsOptional(t *testing.T) {
	mailer := &fakeMailer{}
	r := newTestRouter(&fakeLister{}, mailer, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Ali Hassan",
		"email":   "ali@example.com",
		"subject": "Hi",
		"message": "No phone on file.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.contacts, 1)
	assert.Empty(t, mailer.contacts[0].phone)
}

func TestContact_MalformedBody(t *testing.T) {
	mailer := &fakeMailer{}
	r := newTestRouter(&fakeLister{}, mailer, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/contact", "{not json")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send message", decode(t, w)["error"])
	assert.Empty(t, mailer.contacts)
}

func TestContact_ProviderFailure(t *testing.T) {
	mailer := &fakeMailer{contactErr: errors.New("smtp unavailable")}
	r := newTestRouter(&fakeLister{}, mailer, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Ali Hassan",
		"email":   "ali@example.com",
		"subject": "Hi",
		"message": "Hello",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send message", decode(t, w)["error"])
}

func TestContact_Preflight(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodOptions, "/api/contact", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestContact_PreflightWithOrigin(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	// A real browser preflight carries Origin and the requested method;
	// the CORS middleware answers it before the route handler.
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://broskii.co")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestContact_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodDelete, "/api/contact", nil)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", decode(t, w)["error"])
}
