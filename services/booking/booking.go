// File: services/booking/booking.go
package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

func validateSubmission(sub *models.BookingSubmission) error {
	if sub.Customer.Email == "" || sub.Customer.FirstName == "" || sub.Customer.LastName == "" {
		return fmt.Errorf("%w: customer email and name are required", ErrInvalidSubmission)
	}
	if !models.ValidHouseSize(sub.HouseSize) {
		return fmt.Errorf("%w: unknown house size %q", ErrInvalidSubmission, sub.HouseSize)
	}
	if !models.ValidFrequency(sub.Frequency) {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidSubmission, sub.Frequency)
	}
	if _, err := time.Parse("2006-01-02", sub.BookingDate); err != nil {
		return fmt.Errorf("%w: booking date must be YYYY-MM-DD", ErrInvalidSubmission)
	}
	if sub.TimeSlot == "" {
		return fmt.Errorf("%w: a time slot is required", ErrInvalidSubmission)
	}
	if !sub.Rooms.CountsInRange() {
		return fmt.Errorf("%w: room counts out of range", ErrInvalidSubmission)
	}
	for _, line := range sub.ALaCarteServices {
		if line.Quantity < 1 {
			return fmt.Errorf("%w: a-la-carte quantities must be at least 1", ErrInvalidSubmission)
		}
	}
	return nil
}

// findOrCreateCustomer reuses an existing customer record by email, creating
// a guest record otherwise.
func (s *DefaultBookingService) findOrCreateCustomer(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	if existing, err := s.Customers.GetByEmail(ctx, input.Email); err == nil {
		return existing, nil
	}
	customer := &models.Customer{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		IsGuest:   true,
	}
	if err := s.Customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Submit validates a submission, recomputes all money amounts server-side
// from the catalog and pricing matrix, and writes the booking as pending
// payment. Client-sent prices are never trusted.
func (s *DefaultBookingService) Submit(ctx context.Context, sub *models.BookingSubmission) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateSubmission(sub); err != nil {
		return nil, err
	}

	customer, err := s.findOrCreateCustomer(ctx, sub.Customer)
	if err != nil {
		logger.Error("Failed to resolve customer for booking", zap.Error(err))
		return nil, err
	}

	basePrice, err := s.Pricing.BasePrice(ctx, sub.HouseSize, sub.Frequency)
	if err != nil {
		return nil, err
	}

	addOnTotal := 0.0
	for _, line := range sub.ALaCarteServices {
		svc, err := s.Catalog.GetByID(ctx, line.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown service %s", ErrInvalidSubmission, line.ServiceID)
		}
		if !svc.IsALaCarte {
			return nil, fmt.Errorf("%w: service %s is not a-la-carte", ErrInvalidSubmission, line.ServiceID)
		}
		addOnTotal += svc.ALaCartePrice * float64(line.Quantity)
	}
	for _, line := range sub.Services {
		if _, err := s.Catalog.GetByID(ctx, line.ServiceID); err != nil {
			return nil, fmt.Errorf("%w: unknown service %s", ErrInvalidSubmission, line.ServiceID)
		}
	}

	subtotal := basePrice + addOnTotal

	discount := 0.0
	promoCode := ""
	if sub.PromoCode != nil && *sub.PromoCode != "" {
		result, err := s.Promos.Validate(ctx, *sub.PromoCode, subtotal)
		if err != nil {
			return nil, err
		}
		if result.Valid {
			discount = result.Discount
			promoCode = result.Promo.Code
		}
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		CustomerID:          customer.ID,
		HouseSize:           sub.HouseSize,
		Frequency:           sub.Frequency,
		BasePrice:           basePrice,
		Rooms:               sub.Rooms,
		Services:            sub.Services,
		ALaCarteServices:    sub.ALaCarteServices,
		BookingDate:         sub.BookingDate,
		TimeSlot:            sub.TimeSlot,
		Subtotal:            subtotal,
		Discount:            discount,
		TotalAmount:         total,
		PromoCode:           promoCode,
		Status:              models.BookingStatusPending,
		PaymentStatus:       models.PaymentStatusPending,
		SpecialInstructions: sub.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		return nil, err
	}

	// Take the window off the calendar. A failure here is logged but does
	// not unwind the booking; the admin console shows the conflict.
	if err := s.Schedule.ReserveSlot(ctx, booking.BookingDate, booking.TimeSlot); err != nil {
		logger.Warn("Failed to reserve time slot",
			zap.String("bookingID", booking.ID),
			zap.String("date", booking.BookingDate),
			zap.String("slot", booking.TimeSlot),
			zap.Error(err))
	}

	if promoCode != "" {
		if err := s.Promos.RecordUsage(ctx, promoCode); err != nil {
			logger.Warn("Failed to record promo usage", zap.String("code", promoCode), zap.Error(err))
		}
	}

	logger.Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("customerID", customer.ID),
		zap.Float64("total", booking.TotalAmount))
	return booking, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll(ctx)
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusInProgress, models.BookingStatusCompleted,
		models.BookingStatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSubmission, status)
	}
	return s.Bookings.UpdateStatus(ctx, id, status)
}

func (s *DefaultBookingService) AssignCleaner(ctx context.Context, id, cleanerID string) error {
	return s.Bookings.AssignCleaner(ctx, id, cleanerID)
}
