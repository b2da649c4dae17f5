package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"broskii-backend/services"
	"broskii-backend/utils"
)

type SubscribePayload struct {
	Email string `json:"email"`
}

// SubscriberController collects newsletter signups.
type SubscriberController struct {
	Subscribers *services.SubscriberService
}

func NewSubscriberController(subscribers *services.SubscriberService) *SubscriberController {
	return &SubscriberController{Subscribers: subscribers}
}

func (ctrl *SubscriberController) Subscribe(c *gin.Context) {
	var p SubscribePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !utils.IsValidEmail(p.Email) {
		utils.JSONError(c, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	sub, err := ctrl.Subscribers.Subscribe(p.Email)
	if err != nil {
		log.Printf("subscribe failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, sub)
}
