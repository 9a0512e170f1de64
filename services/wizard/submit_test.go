package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

type fakeSubmitter struct {
	got     *models.BookingSubmission
	booking *models.Booking
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub *models.BookingSubmission) (*models.Booking, error) {
	f.got = sub
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakePayments struct {
	result *models.PaymentResult
	err    error
}

func (f *fakePayments) ProcessPayment(ctx context.Context, bookingID string, req *models.PaymentRequest) (*models.PaymentResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func reviewReadySession() *models.WizardSession {
	return &models.WizardSession{
		SessionID: "draft-1",
		Step:      int(StepReview),
		HouseSize: "1500-2000",
		Frequency: "weekly",
		BasePrice: 150,
		Cart: []models.CartItem{
			{ServiceID: "fridge", ServiceName: "Inside Refrigerator", UnitPrice: 35, Quantity: 2},
		},
		SelectedServices: []models.SelectedService{
			{ServiceID: "deep", ServiceName: "Deep Cleaning", Quantity: 1},
		},
		SelectedDate:        "2026-09-15",
		SelectedTimeSlot:    "08:00-10:00",
		SpecialInstructions: "Side gate code 4411",
		Contact: models.ContactInfo{
			Email:     "jo@example.com",
			FirstName: "Jo",
			LastName:  "Harper",
			Phone:     "281-555-0101",
			Address:   "12 Cypress Ln",
			City:      "Cypress",
			State:     "TX",
			ZipCode:   "77429",
		},
		Promo: &models.AppliedPromo{
			Code:          "FLAT20",
			DiscountType:  models.DiscountTypeFixed,
			DiscountValue: 20,
			Discount:      20,
		},
	}
}

func TestAssembleMapsDraftOntoSubmission(t *testing.T) {
	sub := Assemble(reviewReadySession())

	assert.Equal(t, "jo@example.com", sub.Customer.Email)
	assert.Equal(t, "Jo", sub.Customer.FirstName)
	assert.Equal(t, "Harper", sub.Customer.LastName)
	assert.Equal(t, "77429", sub.Customer.ZipCode)
	assert.Equal(t, "1500-2000", sub.HouseSize)
	assert.Equal(t, "weekly", sub.Frequency)
	assert.Equal(t, 150.0, sub.BasePrice)
	assert.Equal(t, "2026-09-15", sub.BookingDate)
	assert.Equal(t, "08:00-10:00", sub.TimeSlot)
	assert.Equal(t, "Side gate code 4411", sub.SpecialInstructions)

	require.Len(t, sub.Services, 1)
	assert.Equal(t, models.BookingLine{ServiceID: "deep", Quantity: 1}, sub.Services[0])
	require.Len(t, sub.ALaCarteServices, 1)
	assert.Equal(t, models.BookingLine{ServiceID: "fridge", Quantity: 2}, sub.ALaCarteServices[0])

	require.NotNil(t, sub.PromoCode)
	assert.Equal(t, "FLAT20", *sub.PromoCode)
}

func TestAssembleWithoutPromo(t *testing.T) {
	sess := reviewReadySession()
	sess.Promo = nil
	sub := Assemble(sess)
	assert.Nil(t, sub.PromoCode)
}

func newSubmitWizard(t *testing.T, submitter *fakeSubmitter, payments PaymentProcessor) (*DefaultWizardService, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewDefaultWizardService(
		store,
		&fakePricing{price: 150},
		testCatalog(),
		&fakePromos{},
		submitter,
		payments,
	)
	return svc, store
}

func TestSubmitOnlyFromReviewStep(t *testing.T) {
	svc, store := newSubmitWizard(t, &fakeSubmitter{}, &fakePayments{})
	sess := reviewReadySession()
	sess.Step = int(StepContact)
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := svc.Submit(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrNotOnReviewStep)
}

func TestSubmitSuccessDiscardsDraft(t *testing.T) {
	submitter := &fakeSubmitter{booking: &models.Booking{ID: "bk-1", TotalAmount: 200}}
	payments := &fakePayments{result: &models.PaymentResult{
		Success:       true,
		PaymentStatus: models.PaymentStatusPaid,
		BookingStatus: models.BookingStatusConfirmed,
		TransactionID: "txn_abc123",
	}}
	svc, store := newSubmitWizard(t, submitter, payments)
	sess := reviewReadySession()
	require.NoError(t, store.Save(context.Background(), sess))

	result, err := svc.Submit(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", result.Booking.ID)
	assert.True(t, result.Payment.Success)

	_, err = svc.GetSession(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitPaymentDeclineKeepsDraft(t *testing.T) {
	submitter := &fakeSubmitter{booking: &models.Booking{ID: "bk-2", TotalAmount: 200}}
	payments := &fakePayments{result: &models.PaymentResult{
		Success:       false,
		PaymentStatus: models.PaymentStatusFailed,
		BookingStatus: models.BookingStatusCancelled,
	}}
	svc, store := newSubmitWizard(t, submitter, payments)
	sess := reviewReadySession()
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := svc.Submit(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrPaymentFailed)

	// The draft survives so the customer can retry, and is no longer
	// marked busy.
	kept, err := svc.GetSession(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.False(t, kept.Submitting)
	assert.Equal(t, int(StepReview), kept.Step)
}

func TestSubmitBookingFailureKeepsDraft(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("db down")}
	svc, store := newSubmitWizard(t, submitter, &fakePayments{})
	sess := reviewReadySession()
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := svc.Submit(context.Background(), sess.SessionID)
	require.Error(t, err)

	kept, err := svc.GetSession(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.False(t, kept.Submitting)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	svc, store := newSubmitWizard(t, &fakeSubmitter{}, &fakePayments{})
	sess := reviewReadySession()
	sess.Submitting = true
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := svc.Submit(context.Background(), sess.SessionID)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
}

func TestSubmitChargesComputedTotal(t *testing.T) {
	submitter := &fakeSubmitter{booking: &models.Booking{ID: "bk-3", TotalAmount: 200}}
	var charged float64
	payments := &recordingPayments{charged: &charged}
	svc, store := newSubmitWizard(t, submitter, payments)
	sess := reviewReadySession()
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := svc.Submit(context.Background(), sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, charged)
}

type recordingPayments struct {
	charged *float64
}

func (f *recordingPayments) ProcessPayment(ctx context.Context, bookingID string, req *models.PaymentRequest) (*models.PaymentResult, error) {
	*f.charged = req.Amount
	return &models.PaymentResult{
		Success:       true,
		PaymentStatus: models.PaymentStatusPaid,
		BookingStatus: models.BookingStatusConfirmed,
	}, nil
}
