// File: handlers/support.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cyfairmaids/models"
)

// ListFAQs returns the public FAQ entries.
func ListFAQs(c *gin.Context) {
	faqs, err := AdminService.ListFAQs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load FAQs"})
		return
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// CreateTicket opens a support ticket from the public contact form.
func CreateTicket(c *gin.Context) {
	var input models.TicketCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ticket, err := AdminService.OpenTicket(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open ticket"})
		return
	}
	c.JSON(http.StatusCreated, ticket)
}
