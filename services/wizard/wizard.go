// File: services/wizard/wizard.go
package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// StartSession creates a fresh draft at the first step. userID is optional;
// guests get an empty one.
func (s *DefaultWizardService) StartSession(ctx context.Context, userID string) (*models.WizardSession, error) {
	logger := utils.GetLogger()

	now := time.Now().UTC()
	sess := &models.WizardSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      int(StepHouseProfile),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		logger.Error("Failed to create wizard session", zap.Error(err))
		return nil, err
	}
	logger.Info("Wizard session started", zap.String("sessionID", sess.SessionID))
	return sess, nil
}

// GetSession loads a draft by ID.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// CancelSession discards a draft. Cancelling an unknown session is not an
// error.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// withSession loads the draft, applies fn, stamps UpdatedAt and saves. fn
// returning an error leaves the stored draft untouched.
func (s *DefaultWizardService) withSession(ctx context.Context, sessionID string, fn func(sess *models.WizardSession) error) (*models.WizardSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetHouseProfile records the house size and frequency and resolves the base
// price. A failed pricing lookup falls back to the minimum charge rather
// than blocking the flow.
func (s *DefaultWizardService) SetHouseProfile(ctx context.Context, sessionID, houseSize, frequency string) (*models.WizardSession, error) {
	if !models.ValidHouseSize(houseSize) || !models.ValidFrequency(frequency) {
		return nil, ErrInvalidHouseProfile
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		sess.HouseSize = houseSize
		sess.Frequency = frequency

		price, err := s.Pricing.BasePrice(ctx, houseSize, frequency)
		if err != nil {
			utils.GetLogger().Warn("Pricing lookup failed, using fallback",
				zap.String("houseSize", houseSize),
				zap.String("frequency", frequency),
				zap.Error(err))
			price = FallbackBasePrice
		}
		sess.BasePrice = price
		return nil
	})
}

// SetRooms replaces the room selection.
func (s *DefaultWizardService) SetRooms(ctx context.Context, sessionID string, rooms models.RoomSelection) (*models.WizardSession, error) {
	if !rooms.CountsInRange() {
		return nil, ErrInvalidRooms
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		sess.Rooms = rooms
		return nil
	})
}

// ToggleService flips a standard service on or off. Standard services are
// included in the base package, so toggling never changes the price.
func (s *DefaultWizardService) ToggleService(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error) {
	svc, err := s.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, ErrUnknownService
	}
	if svc.IsALaCarte {
		return nil, ErrNotStandard
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		for i, sel := range sess.SelectedServices {
			if sel.ServiceID == serviceID {
				sess.SelectedServices = append(sess.SelectedServices[:i], sess.SelectedServices[i+1:]...)
				return nil
			}
		}
		sess.SelectedServices = append(sess.SelectedServices, models.SelectedService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Quantity:    1,
		})
		return nil
	})
}

// AddToCart adds one unit of an a-la-carte service, accumulating quantity if
// the item is already present.
func (s *DefaultWizardService) AddToCart(ctx context.Context, sessionID, serviceID string) (*models.WizardSession, error) {
	svc, err := s.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, ErrUnknownService
	}
	if !svc.IsALaCarte {
		return nil, ErrNotALaCarte
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		for i := range sess.Cart {
			if sess.Cart[i].ServiceID == serviceID {
				sess.Cart[i].Quantity++
				return nil
			}
		}
		sess.Cart = append(sess.Cart, models.CartItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			UnitPrice:   svc.ALaCartePrice,
			Quantity:    1,
		})
		return nil
	})
}

// SetCartQuantity sets an item's quantity outright. Zero removes the item;
// negative quantities are rejected.
func (s *DefaultWizardService) SetCartQuantity(ctx context.Context, sessionID, serviceID string, quantity int) (*models.WizardSession, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		for i := range sess.Cart {
			if sess.Cart[i].ServiceID != serviceID {
				continue
			}
			if quantity == 0 {
				sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
			} else {
				sess.Cart[i].Quantity = quantity
			}
			return nil
		}
		return ErrNotInCart
	})
}

// SelectDate records the appointment date. Changing the date always clears
// any previously chosen time slot, since slots belong to one date.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, date string) (*models.WizardSession, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		if sess.SelectedDate != date {
			sess.SelectedTimeSlot = ""
		}
		sess.SelectedDate = date
		return nil
	})
}

// SelectTimeSlot records the slot window for the selected date.
func (s *DefaultWizardService) SelectTimeSlot(ctx context.Context, sessionID, slot string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		if sess.SelectedDate == "" {
			return ErrNoDateSelected
		}
		sess.SelectedTimeSlot = slot
		return nil
	})
}

// SetContactInfo replaces the contact step fields.
func (s *DefaultWizardService) SetContactInfo(ctx context.Context, sessionID string, contact models.ContactInfo) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		sess.Contact = contact
		return nil
	})
}

// SetInstructions records free-form special instructions.
func (s *DefaultWizardService) SetInstructions(ctx context.Context, sessionID, instructions string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		sess.SpecialInstructions = instructions
		return nil
	})
}

// ApplyPromo validates a code against the current subtotal and, when valid,
// snapshots it on the draft. An invalid code is reported in the result and
// leaves any previously applied promo in place. Re-applying the same code is
// idempotent.
func (s *DefaultWizardService) ApplyPromo(ctx context.Context, sessionID, code string) (*models.WizardSession, *models.PromoValidationResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var result *models.PromoValidationResult
	sess, err := s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		res, err := s.Promos.Validate(ctx, code, Subtotal(sess))
		if err != nil {
			return err
		}
		result = res
		if !res.Valid {
			return nil
		}
		sess.Promo = &models.AppliedPromo{
			Code:                  res.Promo.Code,
			DiscountType:          res.Promo.DiscountType,
			DiscountValue:         res.Promo.DiscountValue,
			MaximumDiscountAmount: res.Promo.MaximumDiscountAmount,
			Discount:              res.Discount,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sess, result, nil
}

// RemovePromo clears any applied promo.
func (s *DefaultWizardService) RemovePromo(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		sess.Promo = nil
		return nil
	})
}

// Next advances one step if the target step's gate passes. A gated advance
// leaves the draft exactly as it was.
func (s *DefaultWizardService) Next(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		if Step(sess.Step) >= lastStep {
			return nil
		}
		target := Step(sess.Step) + 1
		if !CanProceed(sess, target) {
			return ErrStepGated
		}
		sess.Step = int(target)
		return nil
	})
}

// Previous moves one step back, never below the first step. Selections are
// kept.
func (s *DefaultWizardService) Previous(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.withSession(ctx, sessionID, func(sess *models.WizardSession) error {
		if sess.Step > int(StepHouseProfile) {
			sess.Step--
		}
		return nil
	})
}
