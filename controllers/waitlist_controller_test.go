package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitlist_ValidationErrors(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/waitlist", map[string]any{
		"fullName": "   ",
		"email":    "not-an-email",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody, ok := decode(t, w)["error"].(map[string]any)
	require.True(t, ok)
	fields, ok := errBody["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Full name is required", fields["fullName"])
	assert.Equal(t, "Please enter a valid email address", fields["email"])
}

func TestWaitlist_MalformedBody(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/waitlist", "{not json")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w)["error"])
}

func TestSubscribe_RejectsInvalidEmail(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/subscribers", map[string]any{
		"email": "missing-at-sign.example.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid email address", decode(t, w)["error"])
}
