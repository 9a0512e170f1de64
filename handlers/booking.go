// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyfairmaids/models"
	"cyfairmaids/services/booking"
)

// SubmitGuestBooking creates a booking directly from a full submission
// payload, bypassing the wizard. Used by API clients and guest checkout.
func SubmitGuestBooking(c *gin.Context) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := BookingService.Submit(c.Request.Context(), &sub)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidSubmission) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SubmitBooking creates a booking for an authenticated customer. The
// submission's contact block is still the source of the customer record;
// the account is matched by email.
func SubmitBooking(c *gin.Context) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sub.Customer.IsGuest = false

	created, err := BookingService.Submit(c.Request.Context(), &sub)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidSubmission) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking returns one booking record.
func GetBooking(c *gin.Context) {
	b, err := BookingService.GetByID(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ProcessPayment runs the simulated charge for a pending booking.
func ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := BookingService.ProcessPayment(c.Request.Context(), c.Param("bookingID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrAlreadySettled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment processing failed", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
