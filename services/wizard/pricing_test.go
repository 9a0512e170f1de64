package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cyfairmaids/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestAddOnTotalSumsUnitPriceTimesQuantity(t *testing.T) {
	cart := []models.CartItem{
		{ServiceID: "fridge", UnitPrice: 35, Quantity: 1},
		{ServiceID: "windows", UnitPrice: 25, Quantity: 3},
	}
	assert.Equal(t, 110.0, AddOnTotal(cart))
}

func TestAddOnTotalEmptyCartIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AddOnTotal(nil))
}

func TestSubtotalIsBasePlusAddOns(t *testing.T) {
	sess := &models.WizardSession{
		BasePrice: 150,
		Cart: []models.CartItem{
			{ServiceID: "oven", UnitPrice: 30, Quantity: 2},
		},
	}
	assert.Equal(t, 210.0, Subtotal(sess))
}

func TestDiscountPercentageClampedByCap(t *testing.T) {
	// 10% of 200 is 20, but the promo caps at 15.
	sess := &models.WizardSession{
		BasePrice: 200,
		Promo: &models.AppliedPromo{
			Code:                  "SAVE10",
			DiscountType:          models.DiscountTypePercentage,
			DiscountValue:         10,
			MaximumDiscountAmount: floatPtr(15),
		},
	}
	assert.Equal(t, 15.0, Discount(sess))
	assert.Equal(t, 185.0, Total(sess))
}

func TestDiscountNeverExceedsSubtotal(t *testing.T) {
	sess := &models.WizardSession{
		BasePrice: 125,
		Promo: &models.AppliedPromo{
			Code:          "BIGFIX",
			DiscountType:  models.DiscountTypeFixed,
			DiscountValue: 500,
		},
	}
	assert.Equal(t, 125.0, Discount(sess))
	assert.Equal(t, 0.0, Total(sess))
}

func TestDiscountRecomputedWhenCartShrinks(t *testing.T) {
	sess := &models.WizardSession{
		BasePrice: 125,
		Cart: []models.CartItem{
			{ServiceID: "cabinets", UnitPrice: 45, Quantity: 2},
		},
		Promo: &models.AppliedPromo{
			Code:          "TWENTYOFF",
			DiscountType:  models.DiscountTypePercentage,
			DiscountValue: 20,
			// Snapshot taken against the larger cart.
			Discount: 43,
		},
	}
	assert.Equal(t, 43.0, Discount(sess))

	// The cart shrinks; the stored snapshot is stale but the derived
	// discount follows the live subtotal.
	sess.Cart = nil
	assert.Equal(t, 25.0, Discount(sess))
	assert.Equal(t, 100.0, Total(sess))
}

func TestNoPromoMeansNoDiscount(t *testing.T) {
	sess := &models.WizardSession{BasePrice: 150}
	assert.Equal(t, 0.0, Discount(sess))
	assert.Equal(t, 150.0, Total(sess))
}
