package models

import "time"

// Promo discount types.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// PromoCode is a discount code. Codes are stored upper-case.
type PromoCode struct {
	ID                    string     `bson:"id" json:"id"`
	Code                  string     `bson:"code" json:"code"`
	Description           string     `bson:"description" json:"description"`
	DiscountType          string     `bson:"discount_type" json:"discount_type"`
	DiscountValue         float64    `bson:"discount_value" json:"discount_value"`
	MinimumOrderAmount    float64    `bson:"minimum_order_amount" json:"minimum_order_amount"`
	MaximumDiscountAmount *float64   `bson:"maximum_discount_amount,omitempty" json:"maximum_discount_amount,omitempty"`
	UsageLimit            int        `bson:"usage_limit" json:"usage_limit"`
	UsageLimitPerCustomer int        `bson:"usage_limit_per_customer" json:"usage_limit_per_customer"`
	UsageCount            int        `bson:"usage_count" json:"usage_count"`
	ValidFrom             *time.Time `bson:"valid_from,omitempty" json:"valid_from,omitempty"`
	ValidUntil            *time.Time `bson:"valid_until,omitempty" json:"valid_until,omitempty"`
	IsActive              bool       `bson:"is_active" json:"is_active"`
	CreatedAt             time.Time  `bson:"created_at" json:"created_at"`
}

// DiscountFor computes the discount this promo grants against a subtotal.
// Percentage promos take subtotal*value/100, fixed promos take value; the
// result is clamped by the promo's cap (when set) and never exceeds the
// subtotal, so the payable total cannot go negative.
func (p *PromoCode) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch p.DiscountType {
	case DiscountTypePercentage:
		discount = subtotal * p.DiscountValue / 100
	case DiscountTypeFixed:
		discount = p.DiscountValue
	default:
		return 0
	}
	if p.MaximumDiscountAmount != nil && discount > *p.MaximumDiscountAmount {
		discount = *p.MaximumDiscountAmount
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// PromoValidationResult is the response of POST /validate-promo-code.
// Invalid codes are reported with Valid=false and a message, not an error.
type PromoValidationResult struct {
	Valid       bool       `json:"valid"`
	Promo       *PromoCode `json:"promo,omitempty"`
	Discount    float64    `json:"discount,omitempty"`
	FinalAmount float64    `json:"final_amount,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// PromoCreate is the admin payload for creating a promo code.
type PromoCreate struct {
	Code                  string     `json:"code" binding:"required"`
	Description           string     `json:"description"`
	DiscountType          string     `json:"discount_type" binding:"required"`
	DiscountValue         float64    `json:"discount_value" binding:"required"`
	MinimumOrderAmount    float64    `json:"minimum_order_amount"`
	MaximumDiscountAmount *float64   `json:"maximum_discount_amount"`
	UsageLimit            int        `json:"usage_limit"`
	UsageLimitPerCustomer int        `json:"usage_limit_per_customer"`
	ValidFrom             *time.Time `json:"valid_from"`
	ValidUntil            *time.Time `json:"valid_until"`
	IsActive              bool       `json:"is_active"`
}
