package models

import "time"

// ContactInfo holds the wizard's contact step fields. JSON keys are
// camelCase on the wizard surface; they are mapped to the snake_case
// booking contract only at submission time.
type ContactInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// SelectedService is a standard service toggled on in the wizard.
// Standard services always carry quantity 1.
type SelectedService struct {
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Quantity    int    `json:"quantity"`
}

// CartItem is an a-la-carte add-on in the wizard cart.
// Invariant: Quantity >= 1; an item edited to zero is removed outright.
type CartItem struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// AppliedPromo is the snapshot of a promo code validated against the
// subtotal at apply time. The stored discount is NOT auto-revalidated when
// the cart changes afterwards; submission re-clamps it against the final
// subtotal.
type AppliedPromo struct {
	Code                  string   `json:"code"`
	DiscountType          string   `json:"discountType"`
	DiscountValue         float64  `json:"discountValue"`
	MaximumDiscountAmount *float64 `json:"maximumDiscountAmount,omitempty"`
	Discount              float64  `json:"discount"`
}

// WizardSession is the booking draft: every selection made across the
// wizard steps for one booking attempt. It lives in the session cache until
// submission succeeds and is owned by exactly one client session.
type WizardSession struct {
	SessionID           string            `json:"sessionId"`
	UserID              string            `json:"userId,omitempty"`
	Step                int               `json:"step"`
	HouseSize           string            `json:"houseSize,omitempty"`
	Frequency           string            `json:"frequency,omitempty"`
	BasePrice           float64           `json:"basePrice"`
	Rooms               RoomSelection     `json:"rooms"`
	SelectedServices    []SelectedService `json:"selectedServices,omitempty"`
	Cart                []CartItem        `json:"aLaCarteCart,omitempty"`
	SelectedDate        string            `json:"selectedDate,omitempty"`
	SelectedTimeSlot    string            `json:"selectedTimeSlot,omitempty"`
	Contact             ContactInfo       `json:"contact"`
	SpecialInstructions string            `json:"specialInstructions,omitempty"`
	Promo               *AppliedPromo     `json:"promo,omitempty"`
	Submitting          bool              `json:"submitting,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}
