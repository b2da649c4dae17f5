package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"broskii-backend/services"
)

type ContactMessagePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactController forwards contact-form messages to the operator.
type ContactController struct {
	Mailer services.Mailer
}

func NewContactController(mailer services.Mailer) *ContactController {
	return &ContactController{Mailer: mailer}
}

func (ctrl *ContactController) SendMessage(c *gin.Context) {
	var p ContactMessagePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		log.Printf("Error sending contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.Subject) == "" ||
		strings.TrimSpace(p.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if err := ctrl.Mailer.SendContactMessage(p.Name, p.Email, p.Phone, p.Subject, p.Message); err != nil {
		log.Printf("Error sending contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
