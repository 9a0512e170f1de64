// File: services/promo/promo.go
package promo

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	promoRepo "cyfairmaids/database/repository/promo"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// PromoService validates and manages discount codes.
type PromoService interface {
	Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error)
	Create(ctx context.Context, input *models.PromoCreate) (*models.PromoCode, error)
	List(ctx context.Context) ([]models.PromoCode, error)
	Delete(ctx context.Context, id string) error
	RecordUsage(ctx context.Context, code string) error
}

// DefaultPromoService is the standard implementation over the promo
// repository.
type DefaultPromoService struct {
	Repo promoRepo.PromoRepository

	// now is injectable so validity windows can be tested.
	now func() time.Time
}

// NewDefaultPromoService wires a promo service from its repository.
func NewDefaultPromoService(repo promoRepo.PromoRepository) *DefaultPromoService {
	return &DefaultPromoService{Repo: repo, now: time.Now}
}

func invalid(message string) *models.PromoValidationResult {
	return &models.PromoValidationResult{Valid: false, Message: message}
}

// Validate checks a code against the current subtotal. Every rejection is a
// Valid=false result with a message, never an error; errors are reserved for
// infrastructure failures.
func (s *DefaultPromoService) Validate(ctx context.Context, code string, subtotal float64) (*models.PromoValidationResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return invalid("Promo code is required"), nil
	}

	promo, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return invalid("Invalid promo code"), nil
	}
	if !promo.IsActive {
		return invalid("This promo code is no longer active"), nil
	}

	now := s.now().UTC()
	if promo.ValidFrom != nil && now.Before(*promo.ValidFrom) {
		return invalid("This promo code is not yet valid"), nil
	}
	if promo.ValidUntil != nil && now.After(*promo.ValidUntil) {
		return invalid("This promo code has expired"), nil
	}
	if promo.UsageLimit > 0 && promo.UsageCount >= promo.UsageLimit {
		return invalid("This promo code has reached its usage limit"), nil
	}
	if subtotal < promo.MinimumOrderAmount {
		return invalid("Order total does not meet the minimum for this promo code"), nil
	}

	discount := promo.DiscountFor(subtotal)
	utils.GetLogger().Info("Promo code validated",
		zap.String("code", code),
		zap.Float64("discount", discount))
	return &models.PromoValidationResult{
		Valid:       true,
		Promo:       promo,
		Discount:    discount,
		FinalAmount: subtotal - discount,
	}, nil
}

// Create adds a promo code. Codes are stored upper-case by the repository.
func (s *DefaultPromoService) Create(ctx context.Context, input *models.PromoCreate) (*models.PromoCode, error) {
	promo := &models.PromoCode{
		Code:                  input.Code,
		Description:           input.Description,
		DiscountType:          input.DiscountType,
		DiscountValue:         input.DiscountValue,
		MinimumOrderAmount:    input.MinimumOrderAmount,
		MaximumDiscountAmount: input.MaximumDiscountAmount,
		UsageLimit:            input.UsageLimit,
		UsageLimitPerCustomer: input.UsageLimitPerCustomer,
		ValidFrom:             input.ValidFrom,
		ValidUntil:            input.ValidUntil,
		IsActive:              input.IsActive,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *DefaultPromoService) List(ctx context.Context) ([]models.PromoCode, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPromoService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// RecordUsage bumps the code's usage counter after a successful booking.
func (s *DefaultPromoService) RecordUsage(ctx context.Context, code string) error {
	return s.Repo.IncrementUsage(ctx, code)
}
