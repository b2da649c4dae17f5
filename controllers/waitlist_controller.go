package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"broskii-backend/models"
	"broskii-backend/services"
	"broskii-backend/utils"
)

type WaitlistPayload struct {
	TripID   string `json:"tripId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// WaitlistController takes waitlist submissions for sold-out trips.
type WaitlistController struct {
	Waitlist *services.WaitlistService
}

func NewWaitlistController(waitlist *services.WaitlistService) *WaitlistController {
	return &WaitlistController{Waitlist: waitlist}
}

func (ctrl *WaitlistController) Join(c *gin.Context) {
	var p WaitlistPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(p.FullName) == "" {
		fields["fullName"] = "Full name is required"
	}
	if !utils.IsValidEmail(p.Email) {
		fields["email"] = "Please enter a valid email address"
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.validation", "message": "Please correct the highlighted fields", "fields": fields},
		})
		return
	}

	entry := models.WaitlistEntry{
		FullName: strings.TrimSpace(p.FullName),
		Email:    strings.TrimSpace(p.Email),
	}
	if trip := strings.TrimSpace(p.TripID); trip != "" {
		entry.TripID = &trip
	}
	if phone := strings.TrimSpace(p.Phone); phone != "" {
		entry.Phone = &phone
	}

	if err := ctrl.Waitlist.Join(&entry); err != nil {
		log.Printf("waitlist insert failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to join waitlist")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, entry)
}
