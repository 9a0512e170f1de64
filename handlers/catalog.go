// File: handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyfairmaids/services/pricing"
)

// ListServices returns the catalog, split into standard and a-la-carte.
func ListServices(c *gin.Context) {
	standard, err := CatalogService.ListStandard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	alaCarte, err := CatalogService.ListALaCarte(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"services":            standard,
		"a_la_carte_services": alaCarte,
	})
}

// ListStandardServices returns the package cleans only.
func ListStandardServices(c *gin.Context) {
	services, err := CatalogService.ListStandard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListALaCarteServices returns the per-unit add-ons only.
func ListALaCarteServices(c *gin.Context) {
	services, err := CatalogService.ListALaCarte(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns one catalog entry.
func GetService(c *gin.Context) {
	svc, err := CatalogService.GetByID(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListAllServices returns the entire catalog in one list.
func ListAllServices(c *gin.Context) {
	services, err := CatalogService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetPricing quotes the base price for a house size and frequency pair.
func GetPricing(c *gin.Context) {
	houseSize := c.Param("houseSize")
	frequency := c.Param("frequency")

	price, err := PricingService.BasePrice(c.Request.Context(), houseSize, frequency)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownHouseSize) || errors.Is(err, pricing.ErrUnknownFrequency) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pricing"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"house_size": houseSize,
		"frequency":  frequency,
		"base_price": price,
	})
}

// ValidatePromoCode checks a code against a client-supplied subtotal.
func ValidatePromoCode(c *gin.Context) {
	var input struct {
		Code     string  `json:"code" binding:"required"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := PromoService.Validate(c.Request.Context(), input.Code, input.Subtotal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate promo code"})
		return
	}
	c.JSON(http.StatusOK, result)
}
