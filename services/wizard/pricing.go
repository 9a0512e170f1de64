package wizard

import "cyfairmaids/models"

// FallbackBasePrice is the minimum charge, substituted whenever the pricing
// lookup for a (house size, frequency) pair fails.
const FallbackBasePrice = 125.00

// AddOnTotal sums unit price times quantity over the a-la-carte cart.
func AddOnTotal(cart []models.CartItem) float64 {
	total := 0.0
	for _, item := range cart {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Subtotal is the base price plus the a-la-carte total.
func Subtotal(sess *models.WizardSession) float64 {
	return sess.BasePrice + AddOnTotal(sess.Cart)
}

// Discount recomputes the applied promo's discount against the current
// subtotal. The clamp (promo cap, then subtotal) is re-applied here so the
// total can never go negative even if the cart shrank after the promo was
// validated.
func Discount(sess *models.WizardSession) float64 {
	if sess.Promo == nil {
		return 0
	}
	promo := models.PromoCode{
		DiscountType:          sess.Promo.DiscountType,
		DiscountValue:         sess.Promo.DiscountValue,
		MaximumDiscountAmount: sess.Promo.MaximumDiscountAmount,
	}
	return promo.DiscountFor(Subtotal(sess))
}

// Total is the payable amount: subtotal minus discount, floored at zero.
func Total(sess *models.WizardSession) float64 {
	total := Subtotal(sess) - Discount(sess)
	if total < 0 {
		return 0
	}
	return total
}
