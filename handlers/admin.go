// File: handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pricingRepo "cyfairmaids/database/repository/pricing"
	"cyfairmaids/models"
)

// GetAdminStats returns the dashboard summary.
func GetAdminStats(c *gin.Context) {
	stats, err := AdminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListBookings returns every booking, newest first.
func ListBookings(c *gin.Context) {
	bookings, err := BookingService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBooking patches a booking's status and/or assigned cleaner.
func UpdateBooking(c *gin.Context) {
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if patch.Status == nil && patch.CleanerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	id := c.Param("bookingID")
	if patch.Status != nil {
		if err := BookingService.UpdateStatus(c.Request.Context(), id, *patch.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}
	if patch.CleanerID != nil {
		if err := BookingService.AssignCleaner(c.Request.Context(), id, *patch.CleanerID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
	}

	updated, err := BookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ExportBookings streams every booking as a CSV download.
func ExportBookings(c *gin.Context) {
	data, err := AdminService.ExportBookingsCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export bookings"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// CreateService adds a catalog entry.
func CreateService(c *gin.Context) {
	var input models.ServiceCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc, err := CatalogService.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// DeleteService removes a catalog entry.
func DeleteService(c *gin.Context) {
	if err := CatalogService.Delete(c.Request.Context(), c.Param("serviceID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SetPricing upserts one row of the pricing matrix.
func SetPricing(c *gin.Context) {
	var entry pricingRepo.PricingEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := PricingService.SetPrice(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetPricingMatrix returns every configured price row.
func GetPricingMatrix(c *gin.Context) {
	entries, err := PricingService.Matrix(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": entries})
}

// CreatePromoCode adds a promo code.
func CreatePromoCode(c *gin.Context) {
	var input models.PromoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	promo, err := PromoService.Create(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create promo code"})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

// ListPromoCodes returns every promo code.
func ListPromoCodes(c *gin.Context) {
	promos, err := PromoService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load promo codes"})
		return
	}
	if promos == nil {
		promos = []models.PromoCode{}
	}
	c.JSON(http.StatusOK, gin.H{"promo_codes": promos})
}

// DeletePromoCode removes a promo code.
func DeletePromoCode(c *gin.Context) {
	if err := PromoService.Delete(c.Request.Context(), c.Param("promoID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "promo code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateCleaner adds a staff member.
func CreateCleaner(c *gin.Context) {
	var input models.CleanerCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cleaner, err := AdminService.CreateCleaner(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cleaner"})
		return
	}
	c.JSON(http.StatusCreated, cleaner)
}

// ListCleaners returns the staff roster.
func ListCleaners(c *gin.Context) {
	cleaners, err := AdminService.ListCleaners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cleaners"})
		return
	}
	if cleaners == nil {
		cleaners = []models.Cleaner{}
	}
	c.JSON(http.StatusOK, gin.H{"cleaners": cleaners})
}

// DeleteCleaner removes a staff member.
func DeleteCleaner(c *gin.Context) {
	if err := AdminService.DeleteCleaner(c.Request.Context(), c.Param("cleanerID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cleaner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateFAQ adds a FAQ entry.
func CreateFAQ(c *gin.Context) {
	var input models.FAQCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	faq, err := AdminService.CreateFAQ(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create FAQ"})
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// DeleteFAQ removes a FAQ entry.
func DeleteFAQ(c *gin.Context) {
	if err := AdminService.DeleteFAQ(c.Request.Context(), c.Param("faqID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListTickets returns every support ticket.
func ListTickets(c *gin.Context) {
	tickets, err := AdminService.ListTickets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tickets"})
		return
	}
	if tickets == nil {
		tickets = []models.SupportTicket{}
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// UpdateTicket changes a ticket's status.
func UpdateTicket(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := AdminService.UpdateTicketStatus(c.Request.Context(), c.Param("ticketID"), input.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
