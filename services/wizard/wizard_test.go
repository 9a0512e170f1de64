package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

// memStore keeps sessions as JSON so tests exercise the same serialization
// round trip as the Redis store.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Save(ctx context.Context, sess *models.WizardSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.data[sess.SessionID] = raw
	return nil
}

func (s *memStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	raw, ok := s.data[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var sess models.WizardSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

type fakePricing struct {
	price float64
	err   error
}

func (f *fakePricing) BasePrice(ctx context.Context, houseSize, frequency string) (float64, error) {
	return f.price, f.err
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

type fakePromos struct {
	result *models.PromoValidationResult
}

func (f *fakePromos) Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error) {
	return f.result, nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{services: map[string]*models.Service{
		"deep":   {ID: "deep", Name: "Deep Cleaning", Type: models.ServiceTypeDeep},
		"fridge": {ID: "fridge", Name: "Inside Refrigerator", Type: models.ServiceTypeALaCarte, IsALaCarte: true, ALaCartePrice: 35},
		"oven":   {ID: "oven", Name: "Inside Oven", Type: models.ServiceTypeALaCarte, IsALaCarte: true, ALaCartePrice: 30},
	}}
}

func newTestWizard() (*DefaultWizardService, *memStore) {
	store := newMemStore()
	svc := NewDefaultWizardService(
		store,
		&fakePricing{price: 150},
		testCatalog(),
		&fakePromos{result: &models.PromoValidationResult{Valid: false, Message: "Invalid promo code"}},
		nil, nil,
	)
	return svc, store
}

func startSession(t *testing.T, svc *DefaultWizardService) string {
	t.Helper()
	sess, err := svc.StartSession(context.Background(), "")
	require.NoError(t, err)
	return sess.SessionID
}

func TestStartSessionBeginsAtFirstStep(t *testing.T) {
	svc, _ := newTestWizard()
	sess, err := svc.StartSession(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int(StepHouseProfile), sess.Step)
	assert.Equal(t, "user-1", sess.UserID)
	assert.NotEmpty(t, sess.SessionID)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _ := newTestWizard()
	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetHouseProfileResolvesBasePrice(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	sess, err := svc.SetHouseProfile(context.Background(), id, "1500-2000", "weekly")
	require.NoError(t, err)
	assert.Equal(t, 150.0, sess.BasePrice)
	assert.Equal(t, "1500-2000", sess.HouseSize)
	assert.Equal(t, "weekly", sess.Frequency)
}

func TestSetHouseProfileFallsBackWhenLookupFails(t *testing.T) {
	svc, _ := newTestWizard()
	svc.Pricing = &fakePricing{err: errors.New("no row")}
	id := startSession(t, svc)

	sess, err := svc.SetHouseProfile(context.Background(), id, "5000+", "one_time")
	require.NoError(t, err)
	assert.Equal(t, FallbackBasePrice, sess.BasePrice)
}

func TestSetHouseProfileRejectsUnknownValues(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SetHouseProfile(context.Background(), id, "900-1000", "weekly")
	assert.ErrorIs(t, err, ErrInvalidHouseProfile)

	_, err = svc.SetHouseProfile(context.Background(), id, "1500-2000", "daily")
	assert.ErrorIs(t, err, ErrInvalidHouseProfile)
}

func TestSetRoomsRejectsOutOfRangeCounts(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SetRooms(context.Background(), id, models.RoomSelection{OtherBedrooms: 7})
	assert.ErrorIs(t, err, ErrInvalidRooms)

	sess, err := svc.SetRooms(context.Background(), id, models.RoomSelection{OtherBedrooms: 3, Kitchen: true})
	require.NoError(t, err)
	assert.Equal(t, 3, sess.Rooms.OtherBedrooms)
	assert.True(t, sess.Rooms.Kitchen)
}

func TestToggleServiceOnAndOff(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	sess, err := svc.ToggleService(context.Background(), id, "deep")
	require.NoError(t, err)
	require.Len(t, sess.SelectedServices, 1)
	assert.Equal(t, 1, sess.SelectedServices[0].Quantity)

	sess, err = svc.ToggleService(context.Background(), id, "deep")
	require.NoError(t, err)
	assert.Empty(t, sess.SelectedServices)
}

func TestToggleServiceRejectsALaCarte(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.ToggleService(context.Background(), id, "fridge")
	assert.ErrorIs(t, err, ErrNotStandard)
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.AddToCart(context.Background(), id, "fridge")
	require.NoError(t, err)
	sess, err := svc.AddToCart(context.Background(), id, "fridge")
	require.NoError(t, err)

	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 2, sess.Cart[0].Quantity)
	assert.Equal(t, 35.0, sess.Cart[0].UnitPrice)
	assert.Equal(t, 70.0, AddOnTotal(sess.Cart))
}

func TestAddToCartRejectsStandardService(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.AddToCart(context.Background(), id, "deep")
	assert.ErrorIs(t, err, ErrNotALaCarte)
}

func TestSetCartQuantityZeroRemovesItem(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.AddToCart(context.Background(), id, "fridge")
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), id, "oven")
	require.NoError(t, err)

	sess, err := svc.SetCartQuantity(context.Background(), id, "fridge", 0)
	require.NoError(t, err)
	require.Len(t, sess.Cart, 1)
	assert.Equal(t, "oven", sess.Cart[0].ServiceID)
}

func TestSetCartQuantityNegativeRejected(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.AddToCart(context.Background(), id, "fridge")
	require.NoError(t, err)

	_, err = svc.SetCartQuantity(context.Background(), id, "fridge", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSetCartQuantityUnknownItem(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SetCartQuantity(context.Background(), id, "fridge", 2)
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestSelectDateClearsTimeSlot(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SelectDate(context.Background(), id, "2026-09-15")
	require.NoError(t, err)
	_, err = svc.SelectTimeSlot(context.Background(), id, "08:00-10:00")
	require.NoError(t, err)

	sess, err := svc.SelectDate(context.Background(), id, "2026-09-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-16", sess.SelectedDate)
	assert.Empty(t, sess.SelectedTimeSlot)
}

func TestSelectSameDateKeepsTimeSlot(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SelectDate(context.Background(), id, "2026-09-15")
	require.NoError(t, err)
	_, err = svc.SelectTimeSlot(context.Background(), id, "08:00-10:00")
	require.NoError(t, err)

	sess, err := svc.SelectDate(context.Background(), id, "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "08:00-10:00", sess.SelectedTimeSlot)
}

func TestSelectTimeSlotWithoutDate(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SelectTimeSlot(context.Background(), id, "08:00-10:00")
	assert.ErrorIs(t, err, ErrNoDateSelected)
}

func TestSelectDateRejectsBadFormat(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SelectDate(context.Background(), id, "15/09/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestApplyPromoSnapshotsValidCode(t *testing.T) {
	svc, _ := newTestWizard()
	svc.Promos = &fakePromos{result: &models.PromoValidationResult{
		Valid: true,
		Promo: &models.PromoCode{
			Code:                  "SAVE10",
			DiscountType:          models.DiscountTypePercentage,
			DiscountValue:         10,
			MaximumDiscountAmount: floatPtr(15),
		},
		Discount: 15,
	}}
	id := startSession(t, svc)
	_, err := svc.SetHouseProfile(context.Background(), id, "2000-2500", "bi_weekly")
	require.NoError(t, err)

	sess, result, err := svc.ApplyPromo(context.Background(), id, "save10")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.NotNil(t, sess.Promo)
	assert.Equal(t, "SAVE10", sess.Promo.Code)
	assert.Equal(t, 15.0, sess.Promo.Discount)
}

func TestApplyPromoIsIdempotent(t *testing.T) {
	svc, _ := newTestWizard()
	svc.Promos = &fakePromos{result: &models.PromoValidationResult{
		Valid:    true,
		Promo:    &models.PromoCode{Code: "FLAT20", DiscountType: models.DiscountTypeFixed, DiscountValue: 20},
		Discount: 20,
	}}
	id := startSession(t, svc)
	_, err := svc.SetHouseProfile(context.Background(), id, "1500-2000", "weekly")
	require.NoError(t, err)

	first, _, err := svc.ApplyPromo(context.Background(), id, "FLAT20")
	require.NoError(t, err)
	second, _, err := svc.ApplyPromo(context.Background(), id, "FLAT20")
	require.NoError(t, err)

	assert.Equal(t, first.Promo, second.Promo)
	assert.Equal(t, Total(first), Total(second))
}

func TestApplyPromoInvalidCodeLeavesExistingPromo(t *testing.T) {
	svc, _ := newTestWizard()
	svc.Promos = &fakePromos{result: &models.PromoValidationResult{
		Valid:    true,
		Promo:    &models.PromoCode{Code: "FLAT20", DiscountType: models.DiscountTypeFixed, DiscountValue: 20},
		Discount: 20,
	}}
	id := startSession(t, svc)
	_, _, err := svc.ApplyPromo(context.Background(), id, "FLAT20")
	require.NoError(t, err)

	svc.Promos = &fakePromos{result: &models.PromoValidationResult{Valid: false, Message: "Invalid promo code"}}
	sess, result, err := svc.ApplyPromo(context.Background(), id, "BOGUS")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotNil(t, sess.Promo)
	assert.Equal(t, "FLAT20", sess.Promo.Code)
}

func TestRemovePromoClearsDiscount(t *testing.T) {
	svc, _ := newTestWizard()
	svc.Promos = &fakePromos{result: &models.PromoValidationResult{
		Valid:    true,
		Promo:    &models.PromoCode{Code: "FLAT20", DiscountType: models.DiscountTypeFixed, DiscountValue: 20},
		Discount: 20,
	}}
	id := startSession(t, svc)
	_, _, err := svc.ApplyPromo(context.Background(), id, "FLAT20")
	require.NoError(t, err)

	sess, err := svc.RemovePromo(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, sess.Promo)
	assert.Equal(t, 0.0, Discount(sess))
}

func TestNextGatedLeavesSessionUnchanged(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.Next(context.Background(), id)
	assert.ErrorIs(t, err, ErrStepGated)

	sess, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(StepHouseProfile), sess.Step)
}

func TestNextAdvancesWhenGatePasses(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SetHouseProfile(context.Background(), id, "1500-2000", "weekly")
	require.NoError(t, err)

	sess, err := svc.Next(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(StepRooms), sess.Step)
}

func TestPreviousFloorsAtFirstStep(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	sess, err := svc.Previous(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(StepHouseProfile), sess.Step)
}

func TestPreviousKeepsSelections(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	_, err := svc.SetHouseProfile(context.Background(), id, "1500-2000", "weekly")
	require.NoError(t, err)
	_, err = svc.Next(context.Background(), id)
	require.NoError(t, err)

	sess, err := svc.Previous(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(StepHouseProfile), sess.Step)
	assert.Equal(t, "1500-2000", sess.HouseSize)
	assert.Equal(t, 150.0, sess.BasePrice)
}

func TestCancelSessionDiscardsDraft(t *testing.T) {
	svc, _ := newTestWizard()
	id := startSession(t, svc)

	require.NoError(t, svc.CancelSession(context.Background(), id))
	_, err := svc.GetSession(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
