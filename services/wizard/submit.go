// File: services/wizard/submit.go
package wizard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// Assemble maps a completed draft onto the booking submission contract. The
// wizard's camelCase contact fields become the backend's snake_case customer
// payload; cart quantities are carried through unchanged.
func Assemble(sess *models.WizardSession) *models.BookingSubmission {
	sub := &models.BookingSubmission{
		Customer: models.CustomerInput{
			Email:     sess.Contact.Email,
			FirstName: sess.Contact.FirstName,
			LastName:  sess.Contact.LastName,
			Phone:     sess.Contact.Phone,
			Address:   sess.Contact.Address,
			City:      sess.Contact.City,
			State:     sess.Contact.State,
			ZipCode:   sess.Contact.ZipCode,
		},
		HouseSize:           sess.HouseSize,
		Frequency:           sess.Frequency,
		BasePrice:           sess.BasePrice,
		Rooms:               sess.Rooms,
		Services:            []models.BookingLine{},
		ALaCarteServices:    []models.BookingLine{},
		BookingDate:         sess.SelectedDate,
		TimeSlot:            sess.SelectedTimeSlot,
		SpecialInstructions: sess.SpecialInstructions,
	}
	for _, sel := range sess.SelectedServices {
		sub.Services = append(sub.Services, models.BookingLine{ServiceID: sel.ServiceID, Quantity: sel.Quantity})
	}
	for _, item := range sess.Cart {
		sub.ALaCarteServices = append(sub.ALaCarteServices, models.BookingLine{ServiceID: item.ServiceID, Quantity: item.Quantity})
	}
	if sess.Promo != nil {
		code := sess.Promo.Code
		sub.PromoCode = &code
	}
	return sub
}

// Submit finalizes the draft from the review step: it assembles the booking
// submission, creates the booking, then runs payment for the computed total.
// On payment success the draft is discarded; on failure the draft is kept so
// the customer can retry, and the booking stays behind as a cancelled record.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	logger := utils.GetLogger()

	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if Step(sess.Step) != StepReview {
		return nil, ErrNotOnReviewStep
	}
	if sess.Submitting {
		return nil, ErrSubmitInProgress
	}

	// Mark the draft busy before any external call so a concurrent submit
	// of the same session is rejected.
	sess.Submitting = true
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}

	clearBusy := func() {
		sess.Submitting = false
		sess.UpdatedAt = time.Now().UTC()
		if err := s.Store.Save(ctx, sess); err != nil {
			logger.Error("Failed to clear submit flag", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	booking, err := s.Bookings.Submit(ctx, Assemble(sess))
	if err != nil {
		clearBusy()
		logger.Error("Booking submission failed", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	payment, err := s.Payments.ProcessPayment(ctx, booking.ID, &models.PaymentRequest{
		Amount:        booking.TotalAmount,
		PaymentMethod: "mock_card",
	})
	if err != nil {
		clearBusy()
		logger.Error("Payment processing failed", zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, err
	}
	if !payment.Success {
		clearBusy()
		logger.Warn("Payment declined", zap.String("bookingID", booking.ID))
		return nil, ErrPaymentFailed
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		logger.Warn("Failed to discard submitted draft", zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Info("Booking submitted",
		zap.String("bookingID", booking.ID),
		zap.Float64("total", booking.TotalAmount))
	return &SubmitResult{Booking: booking, Payment: payment}, nil
}
