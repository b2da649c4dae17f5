package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"broskii-backend/services"
)

type StartWizardPayload struct {
	TripID string `json:"tripId"`
}

// WizardController exposes the booking wizard over HTTP: one session
// per prospective booking, advanced and retreated step by step.
type WizardController struct {
	Wizards *services.WizardService
}

func NewWizardController(wizards *services.WizardService) *WizardController {
	return &WizardController{Wizards: wizards}
}

func (ctrl *WizardController) StartSession(c *gin.Context) {
	var p StartWizardPayload
	if err := c.ShouldBindJSON(&p); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()},
		})
		return
	}

	w, err := ctrl.Wizards.StartSession(p.TripID)
	if err != nil {
		if errors.Is(err, services.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"code": "error.tripNotFound", "message": "Trip not found"},
			})
			return
		}
		log.Printf("StartSession error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "error.internal", "message": "Failed to start booking session"},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   sessionBody(w),
	})
}

func (ctrl *WizardController) GetSession(c *gin.Context) {
	w, ok := ctrl.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sessionBody(w)})
}

// UpdateDraft merges partial field updates into the draft. Field
// values are not validated here; validation runs on advance so typing
// in one field never blocks editing another.
func (ctrl *WizardController) UpdateDraft(c *gin.Context) {
	w, ok := ctrl.session(c)
	if !ok {
		return
	}

	var update services.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()},
		})
		return
	}

	w.ApplyUpdate(update)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sessionBody(w)})
}

func (ctrl *WizardController) Advance(c *gin.Context) {
	w, ok := ctrl.session(c)
	if !ok {
		return
	}

	res, err := w.Advance()
	if err != nil {
		var fieldErrs services.ValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "error.validation",
					"message": "Please correct the highlighted fields",
					"fields":  fieldErrs,
				},
			})
		case errors.Is(err, services.ErrBookingSaveFailed):
			log.Printf("Advance error for session %s: %v", w.Token, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "error.bookingSaveFailed", "message": "Failed to save booking. Please try again."},
			})
		default:
			log.Printf("Advance error for session %s: %v", w.Token, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": "error.internal", "message": "Something went wrong"},
			})
		}
		return
	}

	if res.WaitlistRequired {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{
				"waitlistRequired": true,
				"step":             res.Step,
				"stepName":         res.Step.String(),
			},
		})
		return
	}

	if res.Completed {
		// Terminal transition: the durable record was already written
		// at the waiver step, nothing more to persist.
		ctrl.Wizards.End(w.Token)
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"completed": true, "redirect": "/thank-you"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"step":      res.Step,
			"stepName":  res.Step.String(),
			"committed": w.Committed(),
		},
	})
}

func (ctrl *WizardController) Retreat(c *gin.Context) {
	w, ok := ctrl.session(c)
	if !ok {
		return
	}

	w.Retreat()
	step := w.Step()
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"step": step, "stepName": step.String()},
	})
}

func (ctrl *WizardController) ConfirmPayment(c *gin.Context) {
	w, ok := ctrl.session(c)
	if !ok {
		return
	}

	if err := w.ConfirmPayment(); err != nil {
		var fieldErrs services.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{"code": "error.validation", "message": "Please correct the highlighted fields", "fields": fieldErrs},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "error.internal", "message": "Something went wrong"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"paymentConfirmed": true}})
}

func (ctrl *WizardController) session(c *gin.Context) (*services.Wizard, bool) {
	token := c.Param("token")
	w, err := ctrl.Wizards.Get(token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{"code": "error.sessionNotFound", "message": "Booking session not found or expired"},
		})
		return nil, false
	}
	return w, true
}

func sessionBody(w *services.Wizard) gin.H {
	step := w.Step()
	body := gin.H{
		"token":     w.Token,
		"step":      step,
		"stepName":  step.String(),
		"draft":     w.Draft(),
		"committed": w.Committed(),
	}
	if trip := w.Trip(); trip != nil {
		body["trip"] = trip
		body["soldOut"] = trip.SoldOut()
	}
	return body
}
