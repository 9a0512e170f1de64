package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.seq++
	if b.ID == "" {
		b.ID = fmt.Sprintf("bk-%d", r.seq)
	}
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (r *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) AssignCleaner(ctx context.Context, id, cleanerID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.CleanerID = cleanerID
	return nil
}

func (r *fakeBookingRepo) SetPaymentOutcome(ctx context.Context, id, paymentStatus, bookingStatus string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.PaymentStatus = paymentStatus
	b.Status = bookingStatus
	return nil
}

func (r *fakeBookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) PaidRevenue(ctx context.Context) (float64, error) {
	var sum float64
	for _, b := range r.bookings {
		if b.PaymentStatus == models.PaymentStatusPaid {
			sum += b.TotalAmount
		}
	}
	return sum, nil
}

type fakeCustomerRepo struct {
	byEmail map[string]*models.Customer
	created int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byEmail: make(map[string]*models.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	r.created++
	if c.ID == "" {
		c.ID = fmt.Sprintf("cust-%d", r.created)
	}
	r.byEmail[strings.ToLower(c.Email)] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	c, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byEmail)), nil
}

type fakeCatalog struct {
	services map[string]*models.Service
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return svc, nil
}

type fakePricing struct{ price float64 }

func (f *fakePricing) BasePrice(ctx context.Context, houseSize, frequency string) (float64, error) {
	return f.price, nil
}

type fakePromos struct {
	result *models.PromoValidationResult
	used   []string
}

func (f *fakePromos) Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error) {
	if f.result == nil {
		return &models.PromoValidationResult{Valid: false, Message: "Invalid promo code"}, nil
	}
	return f.result, nil
}

func (f *fakePromos) RecordUsage(ctx context.Context, code string) error {
	f.used = append(f.used, code)
	return nil
}

type fakeSchedule struct {
	reserved []string
	err      error
}

func (f *fakeSchedule) ReserveSlot(ctx context.Context, date, window string) error {
	if f.err != nil {
		return f.err
	}
	f.reserved = append(f.reserved, date+" "+window)
	return nil
}

func strPtr(s string) *string { return &s }

func validSubmission() *models.BookingSubmission {
	return &models.BookingSubmission{
		Customer: models.CustomerInput{
			Email:     "jo@example.com",
			FirstName: "Jo",
			LastName:  "Harper",
		},
		HouseSize:   "1500-2000",
		Frequency:   "weekly",
		BasePrice:   999, // ignored; the server recomputes
		BookingDate: "2026-09-15",
		TimeSlot:    "08:00-10:00",
		ALaCarteServices: []models.BookingLine{
			{ServiceID: "fridge", Quantity: 2},
		},
	}
}

type testEnv struct {
	svc       *DefaultBookingService
	bookings  *fakeBookingRepo
	customers *fakeCustomerRepo
	promos    *fakePromos
	schedule  *fakeSchedule
}

func newTestEnv() *testEnv {
	bookings := newFakeBookingRepo()
	customers := newFakeCustomerRepo()
	promos := &fakePromos{}
	sched := &fakeSchedule{}
	catalog := &fakeCatalog{services: map[string]*models.Service{
		"deep":   {ID: "deep", Name: "Deep Cleaning"},
		"fridge": {ID: "fridge", Name: "Inside Refrigerator", IsALaCarte: true, ALaCartePrice: 35},
	}}
	svc := NewDefaultBookingService(bookings, customers, catalog, &fakePricing{price: 150}, promos, sched, nil, nil)
	return &testEnv{svc: svc, bookings: bookings, customers: customers, promos: promos, schedule: sched}
}

func TestSubmitRecomputesTotalsServerSide(t *testing.T) {
	env := newTestEnv()

	b, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, 150.0, b.BasePrice)
	assert.Equal(t, 220.0, b.Subtotal)
	assert.Equal(t, 0.0, b.Discount)
	assert.Equal(t, 220.0, b.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)
}

func TestSubmitReservesSlot(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Len(t, env.schedule.reserved, 1)
	assert.Equal(t, "2026-09-15 08:00-10:00", env.schedule.reserved[0])
}

func TestSubmitCreatesGuestCustomerOnce(t *testing.T) {
	env := newTestEnv()

	first, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	second, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.Equal(t, 1, env.customers.created)
}

func TestSubmitAppliesAndRecordsPromo(t *testing.T) {
	env := newTestEnv()
	env.promos.result = &models.PromoValidationResult{
		Valid:    true,
		Promo:    &models.PromoCode{Code: "FLAT20", DiscountType: models.DiscountTypeFixed, DiscountValue: 20},
		Discount: 20,
	}

	sub := validSubmission()
	sub.PromoCode = strPtr("flat20")

	b, err := env.svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 20.0, b.Discount)
	assert.Equal(t, 200.0, b.TotalAmount)
	assert.Equal(t, "FLAT20", b.PromoCode)
	assert.Equal(t, []string{"FLAT20"}, env.promos.used)
}

func TestSubmitIgnoresInvalidPromo(t *testing.T) {
	env := newTestEnv()

	sub := validSubmission()
	sub.PromoCode = strPtr("BOGUS")

	b, err := env.svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Discount)
	assert.Empty(t, b.PromoCode)
	assert.Empty(t, env.promos.used)
}

func TestSubmitValidation(t *testing.T) {
	env := newTestEnv()

	missingEmail := validSubmission()
	missingEmail.Customer.Email = ""
	_, err := env.svc.Submit(context.Background(), missingEmail)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	badSize := validSubmission()
	badSize.HouseSize = "900"
	_, err = env.svc.Submit(context.Background(), badSize)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	badDate := validSubmission()
	badDate.BookingDate = "Sept 15"
	_, err = env.svc.Submit(context.Background(), badDate)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	zeroQty := validSubmission()
	zeroQty.ALaCarteServices = []models.BookingLine{{ServiceID: "fridge", Quantity: 0}}
	_, err = env.svc.Submit(context.Background(), zeroQty)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	unknownService := validSubmission()
	unknownService.ALaCarteServices = []models.BookingLine{{ServiceID: "sauna", Quantity: 1}}
	_, err = env.svc.Submit(context.Background(), unknownService)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	notALaCarte := validSubmission()
	notALaCarte.ALaCarteServices = []models.BookingLine{{ServiceID: "deep", Quantity: 1}}
	_, err = env.svc.Submit(context.Background(), notALaCarte)
	assert.ErrorIs(t, err, ErrInvalidSubmission)
}

func TestProcessPaymentSuccess(t *testing.T) {
	env := newTestEnv()
	env.svc.Outcome = func() bool { return true }

	b, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	result, err := env.svc.ProcessPayment(context.Background(), b.ID, &models.PaymentRequest{Amount: b.TotalAmount, PaymentMethod: "mock_card"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.PaymentStatusPaid, result.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, result.BookingStatus)
	assert.NotEmpty(t, result.TransactionID)

	stored, err := env.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
}

func TestProcessPaymentDecline(t *testing.T) {
	env := newTestEnv()
	env.svc.Outcome = func() bool { return false }

	b, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	result, err := env.svc.ProcessPayment(context.Background(), b.ID, &models.PaymentRequest{Amount: b.TotalAmount, PaymentMethod: "mock_card"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.PaymentStatusFailed, result.PaymentStatus)
	assert.Equal(t, models.BookingStatusCancelled, result.BookingStatus)
	assert.Empty(t, result.TransactionID)

	stored, err := env.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}

func TestProcessPaymentUnknownBooking(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.ProcessPayment(context.Background(), "missing", &models.PaymentRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestProcessPaymentAlreadyPaid(t *testing.T) {
	env := newTestEnv()
	env.svc.Outcome = func() bool { return true }

	b, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	_, err = env.svc.ProcessPayment(context.Background(), b.ID, &models.PaymentRequest{})
	require.NoError(t, err)

	_, err = env.svc.ProcessPayment(context.Background(), b.ID, &models.PaymentRequest{})
	assert.ErrorIs(t, err, ErrAlreadySettled)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	env := newTestEnv()
	b, err := env.svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	err = env.svc.UpdateStatus(context.Background(), b.ID, "vaporized")
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	require.NoError(t, env.svc.UpdateStatus(context.Background(), b.ID, models.BookingStatusCompleted))
}
