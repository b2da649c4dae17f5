package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"broskii-backend/services"
	"broskii-backend/utils"
)

// TripController serves the read-only trip catalog.
type TripController struct {
	Trips *services.TripService
}

func NewTripController(trips *services.TripService) *TripController {
	return &TripController{Trips: trips}
}

func (ctrl *TripController) GetTrips(c *gin.Context) {
	trips, err := ctrl.Trips.GetAll()
	if err != nil {
		log.Printf("trip list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve trips")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, trips)
}

func (ctrl *TripController) GetTripByID(c *gin.Context) {
	trip, err := ctrl.Trips.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Trip not found")
			return
		}
		log.Printf("trip lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve trip")
		return
	}

	body := gin.H{"trip": trip, "soldOut": trip.SoldOut()}
	utils.JSONSuccess(c, http.StatusOK, body)
}
