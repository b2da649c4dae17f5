package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"broskii-backend/models"
)

func TestTripSoldOut(t *testing.T) {
	cases := []struct {
		name string
		trip models.Trip
		want bool
	}{
		{"open with space", models.Trip{Capacity: 52, BookedCount: 10, Status: "open"}, false},
		{"at capacity", models.Trip{Capacity: 52, BookedCount: 52, Status: "open"}, true},
		{"over capacity", models.Trip{Capacity: 52, BookedCount: 60, Status: "open"}, true},
		{"status full overrides count", models.Trip{Capacity: 52, BookedCount: 1, Status: "full"}, true},
		{"status full case-insensitive", models.Trip{Capacity: 52, BookedCount: 1, Status: " Full "}, true},
		{"zero capacity means unlimited", models.Trip{Capacity: 0, BookedCount: 100, Status: "open"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.trip.SoldOut())
		})
	}
}
