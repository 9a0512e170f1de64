// File: services/wizard/interface.go
package wizard

import (
	"context"

	"cyfairmaids/models"
)

// PricingSource resolves the base price for a house size and frequency.
type PricingSource interface {
	BasePrice(ctx context.Context, houseSize, frequency string) (float64, error)
}

// CatalogSource resolves catalog services referenced by the wizard.
type CatalogSource interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

// PromoValidator checks a promo code against a subtotal.
type PromoValidator interface {
	Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error)
}

// BookingSubmitter turns an assembled submission into a booking record.
type BookingSubmitter interface {
	Submit(ctx context.Context, sub *models.BookingSubmission) (*models.Booking, error)
}

// PaymentProcessor settles (or declines) payment for a booking.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, bookingID string, req *models.PaymentRequest) (*models.PaymentResult, error)
}

// SubmitResult is what a successful wizard submission yields.
type SubmitResult struct {
	Booking *models.Booking       `json:"booking"`
	Payment *models.PaymentResult `json:"payment"`
}

// WizardService drives the multi-step booking flow. Every mutation loads the
// draft, applies one named change, recomputes derived pricing, and saves.
type WizardService interface {
	StartSession(ctx context.Context, userID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	SetHouseProfile(ctx context.Context, sessionID, houseSize, frequency string) (*models.WizardSession, error)
	SetRooms(ctx context.Context, sessionID string, rooms models.RoomSelection) (*models.WizardSession, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error)
	AddToCart(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error)
	SetCartQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*models.WizardSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error)
	SelectTimeSlot(ctx context.Context, sessionID, slot string) (*models.WizardSession, error)
	SetContactInfo(ctx context.Context, sessionID string, contact models.ContactInfo) (*models.WizardSession, error)
	SetInstructions(ctx context.Context, sessionID, instructions string) (*models.WizardSession, error)
	ApplyPromo(ctx context.Context, sessionID, code string) (*models.WizardSession, *models.PromoValidationResult, error)
	RemovePromo(ctx context.Context, sessionID string) (*models.WizardSession, error)

	Next(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Previous(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

// DefaultWizardService is the standard implementation over a session store
// and the pricing, catalog, promo, booking and payment services.
type DefaultWizardService struct {
	Store    SessionStore
	Pricing  PricingSource
	Catalog  CatalogSource
	Promos   PromoValidator
	Bookings BookingSubmitter
	Payments PaymentProcessor
}

// NewDefaultWizardService wires a wizard service from its dependencies.
func NewDefaultWizardService(
	store SessionStore,
	pricing PricingSource,
	catalog CatalogSource,
	promos PromoValidator,
	bookings BookingSubmitter,
	payments PaymentProcessor,
) *DefaultWizardService {
	return &DefaultWizardService{
		Store:    store,
		Pricing:  pricing,
		Catalog:  catalog,
		Promos:   promos,
		Bookings: bookings,
		Payments: payments,
	}
}
