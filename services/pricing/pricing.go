// File: services/pricing/pricing.go
package pricing

import (
	"context"
	"errors"

	"go.uber.org/zap"

	pricingRepo "cyfairmaids/database/repository/pricing"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// FallbackBasePrice is quoted whenever the matrix has no row for a valid
// (house size, frequency) pair.
const FallbackBasePrice = 125.00

var (
	// ErrUnknownHouseSize is returned for a size outside the known bands.
	ErrUnknownHouseSize = errors.New("unknown house size band")
	// ErrUnknownFrequency is returned for an unrecognized cleaning frequency.
	ErrUnknownFrequency = errors.New("unknown cleaning frequency")
)

// PricingService quotes base prices from the (house size, frequency) matrix.
type PricingService interface {
	BasePrice(ctx context.Context, houseSize, frequency string) (float64, error)
	Matrix(ctx context.Context) ([]pricingRepo.PricingEntry, error)
	SetPrice(ctx context.Context, entry pricingRepo.PricingEntry) error
}

// DefaultPricingService is the standard implementation over the pricing
// repository.
type DefaultPricingService struct {
	Repo pricingRepo.PricingRepository
}

// NewDefaultPricingService wires a pricing service from its repository.
func NewDefaultPricingService(repo pricingRepo.PricingRepository) *DefaultPricingService {
	return &DefaultPricingService{Repo: repo}
}

// BasePrice returns the matrix price for the pair, or the fallback when the
// matrix has no row. Unknown size bands or frequencies are rejected.
func (s *DefaultPricingService) BasePrice(ctx context.Context, houseSize, frequency string) (float64, error) {
	if !models.ValidHouseSize(houseSize) {
		return 0, ErrUnknownHouseSize
	}
	if !models.ValidFrequency(frequency) {
		return 0, ErrUnknownFrequency
	}

	price, err := s.Repo.Lookup(ctx, houseSize, frequency)
	if err != nil {
		utils.GetLogger().Warn("No matrix row for pricing pair, quoting fallback",
			zap.String("houseSize", houseSize),
			zap.String("frequency", frequency))
		return FallbackBasePrice, nil
	}
	return price, nil
}

// Matrix returns every configured price row.
func (s *DefaultPricingService) Matrix(ctx context.Context) ([]pricingRepo.PricingEntry, error) {
	entries := make([]pricingRepo.PricingEntry, 0, len(models.HouseSizeBands)*len(models.Frequencies))
	for _, size := range models.HouseSizeBands {
		for _, freq := range models.Frequencies {
			price, err := s.Repo.Lookup(ctx, size, freq)
			if err != nil {
				continue
			}
			entries = append(entries, pricingRepo.PricingEntry{HouseSize: size, Frequency: freq, BasePrice: price})
		}
	}
	return entries, nil
}

// SetPrice upserts one matrix row.
func (s *DefaultPricingService) SetPrice(ctx context.Context, entry pricingRepo.PricingEntry) error {
	if !models.ValidHouseSize(entry.HouseSize) {
		return ErrUnknownHouseSize
	}
	if !models.ValidFrequency(entry.Frequency) {
		return ErrUnknownFrequency
	}
	if entry.BasePrice < FallbackBasePrice {
		entry.BasePrice = FallbackBasePrice
	}
	return s.Repo.Upsert(ctx, entry)
}
