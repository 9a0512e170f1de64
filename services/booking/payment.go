// File: services/booking/payment.go
package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// ProcessPayment runs the simulated charge for a pending booking. Success
// moves the booking to paid/confirmed and kicks off the confirmation email
// and reminder; a decline moves it to failed/cancelled. Either way the
// outcome is reported in the result, not as an error.
func (s *DefaultBookingService) ProcessPayment(ctx context.Context, bookingID string, req *models.PaymentRequest) (*models.PaymentResult, error) {
	logger := utils.GetLogger()

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadySettled
	}

	success := s.Outcome()
	result := &models.PaymentResult{Success: success}

	if success {
		result.PaymentStatus = models.PaymentStatusPaid
		result.BookingStatus = models.BookingStatusConfirmed
		result.TransactionID = "txn_" + uuid.New().String()
	} else {
		result.PaymentStatus = models.PaymentStatusFailed
		result.BookingStatus = models.BookingStatusCancelled
	}

	if err := s.Bookings.SetPaymentOutcome(ctx, bookingID, result.PaymentStatus, result.BookingStatus); err != nil {
		logger.Error("Failed to record payment outcome", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, err
	}
	booking.PaymentStatus = result.PaymentStatus
	booking.Status = result.BookingStatus

	if success {
		s.notifyPaid(ctx, booking)
		logger.Info("Payment approved",
			zap.String("bookingID", bookingID),
			zap.String("transactionID", result.TransactionID))
	} else {
		logger.Warn("Payment declined", zap.String("bookingID", bookingID))
	}
	return result, nil
}

// notifyPaid sends the confirmation email and schedules the day-before
// reminder. Both are best-effort; failures never affect the payment result.
func (s *DefaultBookingService) notifyPaid(ctx context.Context, booking *models.Booking) {
	logger := utils.GetLogger()

	customer, err := s.Customers.GetByID(ctx, booking.CustomerID)
	if err != nil {
		logger.Warn("Could not load customer for notifications",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendBookingConfirmation(booking, customer.Email); err != nil {
			logger.Warn("Failed to send confirmation email",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, booking, customer.Email); err != nil {
			logger.Warn("Failed to schedule reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
}
