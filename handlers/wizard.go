// File: handlers/wizard.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyfairmaids/models"
	"cyfairmaids/services/wizard"
)

// wizardView is the wire shape of every wizard response: the draft plus the
// derived pricing summary, recomputed on each read.
func wizardView(sess *models.WizardSession) gin.H {
	return gin.H{
		"session": sess,
		"pricing": gin.H{
			"basePrice":  sess.BasePrice,
			"addOnTotal": wizard.AddOnTotal(sess.Cart),
			"subtotal":   wizard.Subtotal(sess),
			"discount":   wizard.Discount(sess),
			"total":      wizard.Total(sess),
		},
	}
}

// wizardError maps service errors onto HTTP statuses.
func wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrStepGated),
		errors.Is(err, wizard.ErrNotOnReviewStep),
		errors.Is(err, wizard.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrInvalidHouseProfile),
		errors.Is(err, wizard.ErrInvalidRooms),
		errors.Is(err, wizard.ErrUnknownService),
		errors.Is(err, wizard.ErrNotALaCarte),
		errors.Is(err, wizard.ErrNotStandard),
		errors.Is(err, wizard.ErrNotInCart),
		errors.Is(err, wizard.ErrInvalidQuantity),
		errors.Is(err, wizard.ErrInvalidDate),
		errors.Is(err, wizard.ErrNoDateSelected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}

// StartWizardSession creates a fresh booking draft.
func StartWizardSession(c *gin.Context) {
	userID := c.GetString("customerID")
	sess, err := WizardService.StartSession(c.Request.Context(), userID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wizardView(sess))
}

// GetWizardSession returns the draft and its derived pricing.
func GetWizardSession(c *gin.Context) {
	sess, err := WizardService.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// CancelWizardSession discards the draft.
func CancelWizardSession(c *gin.Context) {
	if err := WizardService.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SetHouseProfile records house size and frequency and reprices the draft.
func SetHouseProfile(c *gin.Context) {
	var input struct {
		HouseSize string `json:"houseSize" binding:"required"`
		Frequency string `json:"frequency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SetHouseProfile(c.Request.Context(), c.Param("sessionID"), input.HouseSize, input.Frequency)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SetRooms replaces the draft's room selection.
func SetRooms(c *gin.Context) {
	var rooms models.RoomSelection
	if err := c.ShouldBindJSON(&rooms); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SetRooms(c.Request.Context(), c.Param("sessionID"), rooms)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// ToggleWizardService flips a standard service on or off.
func ToggleWizardService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.ToggleService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// AddToCart adds one unit of an a-la-carte service.
func AddToCart(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.AddToCart(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// UpdateCartQuantity sets an item's quantity; zero removes it.
func UpdateCartQuantity(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		Quantity  *int   `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SetCartQuantity(c.Request.Context(), c.Param("sessionID"), input.ServiceID, *input.Quantity)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SelectDate records the appointment date and clears any chosen slot.
func SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SelectTimeSlot records the slot window on the selected date.
func SelectTimeSlot(c *gin.Context) {
	var input struct {
		TimeSlot string `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SelectTimeSlot(c.Request.Context(), c.Param("sessionID"), input.TimeSlot)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SetContactInfo replaces the contact step fields.
func SetContactInfo(c *gin.Context) {
	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SetContactInfo(c.Request.Context(), c.Param("sessionID"), contact)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SetInstructions records special instructions.
func SetInstructions(c *gin.Context) {
	var input struct {
		Instructions string `json:"instructions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, err := WizardService.SetInstructions(c.Request.Context(), c.Param("sessionID"), input.Instructions)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// ApplyPromo validates and applies a promo code to the draft.
func ApplyPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sess, result, err := WizardService.ApplyPromo(c.Request.Context(), c.Param("sessionID"), input.Code)
	if err != nil {
		wizardError(c, err)
		return
	}
	view := wizardView(sess)
	view["validation"] = result
	c.JSON(http.StatusOK, view)
}

// RemovePromo clears the draft's promo code.
func RemovePromo(c *gin.Context) {
	sess, err := WizardService.RemovePromo(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// NextStep advances the wizard one step.
func NextStep(c *gin.Context) {
	sess, err := WizardService.Next(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// PreviousStep moves the wizard one step back.
func PreviousStep(c *gin.Context) {
	sess, err := WizardService.Previous(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardView(sess))
}

// SubmitWizard finalizes the draft into a booking and runs payment.
func SubmitWizard(c *gin.Context) {
	result, err := WizardService.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
