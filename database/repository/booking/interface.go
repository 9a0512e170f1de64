package bookingRepo

import (
	"context"

	"cyfairmaids/models"
)

// BookingRepository manages booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AssignCleaner(ctx context.Context, id, cleanerID string) error
	SetPaymentOutcome(ctx context.Context, id, paymentStatus, bookingStatus string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
}
