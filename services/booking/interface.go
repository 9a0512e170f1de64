// File: services/booking/interface.go
package booking

import (
	"context"
	"math/rand"

	bookingRepo "cyfairmaids/database/repository/booking"
	customerRepo "cyfairmaids/database/repository/customer"
	"cyfairmaids/models"
)

// CatalogSource resolves catalog services referenced by a submission.
type CatalogSource interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
}

// PricingSource quotes the base price for a house size and frequency.
type PricingSource interface {
	BasePrice(ctx context.Context, houseSize, frequency string) (float64, error)
}

// PromoSource validates promo codes and records their usage.
type PromoSource interface {
	Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error)
	RecordUsage(ctx context.Context, code string) error
}

// SlotReserver takes an appointment window off the calendar.
type SlotReserver interface {
	ReserveSlot(ctx context.Context, date, window string) error
}

// Notifier sends the customer-facing confirmation for a paid booking.
// Implementations must be safe to skip (no-op) when email is disabled.
type Notifier interface {
	SendBookingConfirmation(booking *models.Booking, email string) error
}

// ReminderScheduler enqueues the day-before reminder for a paid booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.Booking, email string) error
}

// BookingService creates and manages booking records.
type BookingService interface {
	Submit(ctx context.Context, sub *models.BookingSubmission) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AssignCleaner(ctx context.Context, id, cleanerID string) error
	ProcessPayment(ctx context.Context, bookingID string, req *models.PaymentRequest) (*models.PaymentResult, error)
}

// DefaultBookingService is the standard implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Catalog   CatalogSource
	Pricing   PricingSource
	Promos    PromoSource
	Schedule  SlotReserver
	Mailer    Notifier
	Reminders ReminderScheduler

	// Outcome decides whether a simulated payment succeeds. The default
	// approves roughly nine in ten.
	Outcome func() bool
}

// NewDefaultBookingService wires a booking service from its dependencies.
// Mailer and Reminders may be nil; confirmation and reminder delivery are
// then skipped.
func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	customers customerRepo.CustomerRepository,
	catalog CatalogSource,
	pricing PricingSource,
	promos PromoSource,
	schedule SlotReserver,
	mailer Notifier,
	reminders ReminderScheduler,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Customers: customers,
		Catalog:   catalog,
		Pricing:   pricing,
		Promos:    promos,
		Schedule:  schedule,
		Mailer:    mailer,
		Reminders: reminders,
		Outcome:   func() bool { return rand.Float64() < 0.9 },
	}
}
