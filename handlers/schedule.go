// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAvailableDates lists dates that still have at least one open slot.
func GetAvailableDates(c *gin.Context) {
	dates, err := ScheduleService.AvailableDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load available dates"})
		return
	}
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetTimeSlots lists the open slots on one date (?date=YYYY-MM-DD).
func GetTimeSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := ScheduleService.SlotsForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load time slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
