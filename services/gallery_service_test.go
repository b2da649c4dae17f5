package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"broskii-backend/services"
)

func TestDeliveryURL(t *testing.T) {
	url := services.DeliveryURL("demo", "c_fill,h_300,w_400,q_auto", 1736672400, "Broskii Trips Gallery/slope-day", "jpg")
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/c_fill,h_300,w_400,q_auto/v1736672400/Broskii Trips Gallery/slope-day.jpg",
		url,
	)
}
