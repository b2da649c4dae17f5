package controllers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"broskii-backend/services"
)

func TestGallery_ListImages(t *testing.T) {
	created := time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC)
	lister := &fakeLister{images: []services.GalleryImage{
		{
			ID:        "Broskii Trips Gallery/slope-day",
			URL:       "https://res.cloudinary.com/demo/image/upload/c_fill,h_300,w_400,q_auto/v1736672400/Broskii Trips Gallery/slope-day.jpg",
			FullURL:   "https://res.cloudinary.com/demo/image/upload/q_auto/v1736672400/Broskii Trips Gallery/slope-day.jpg",
			Alt:       "slope-day",
			CreatedAt: created,
		},
		{ID: "Broskii Trips Gallery/apres", Alt: "apres"},
	}}
	r := newTestRouter(lister, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodGet, "/api/gallery/images", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	images, ok := body["images"].([]any)
	require.True(t, ok, "body: %v", body)
	require.Len(t, images, 2)

	first, ok := images[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Broskii Trips Gallery/slope-day", first["id"])
	assert.Equal(t, lister.images[0].URL, first["url"])
	assert.Equal(t, lister.images[0].FullURL, first["fullUrl"])
	assert.Equal(t, "slope-day", first["alt"])
	assert.Equal(t, "2026-01-12T09:30:00Z", first["created_at"])
}

func TestGallery_EmptyFolder(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodGet, "/api/gallery/images", nil)

	require.Equal(t, http.StatusOK, w.Code)
	images, ok := decode(t, w)["images"].([]any)
	require.True(t, ok, "images must be an array, not null")
	assert.Empty(t, images)
}

func TestGallery_ProviderFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("cloudinary search: 401 unauthorized")}
	r := newTestRouter(lister, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodGet, "/api/gallery/images", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Failed to fetch images", body["error"])
	assert.Contains(t, body["details"], "401")
}

func TestGallery_Preflight(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodOptions, "/api/gallery/images", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGallery_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(&fakeLister{}, &fakeMailer{}, &fakeStore{})

	w := perform(t, r, http.MethodPost, "/api/gallery/images", nil)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", decode(t, w)["error"])
}
