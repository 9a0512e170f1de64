// File: database/seed/seed.go
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	catalogRepo "cyfairmaids/database/repository/catalog"
	pricingRepo "cyfairmaids/database/repository/pricing"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// standardServices are the package cleans offered on the booking site.
var standardServices = []models.Service{
	{Name: "Standard Cleaning", Type: models.ServiceTypeStandard, Description: "Routine clean of all living areas, kitchen and bathrooms.", BasePrice: 120, DurationHours: 2},
	{Name: "Deep Cleaning", Type: models.ServiceTypeDeep, Description: "Top-to-bottom detail clean including baseboards, fixtures and behind furniture.", BasePrice: 250, DurationHours: 4},
	{Name: "Move-In Cleaning", Type: models.ServiceTypeMoveIn, Description: "Full clean of an empty home before you move in.", BasePrice: 300, DurationHours: 5},
	{Name: "Move-Out Cleaning", Type: models.ServiceTypeMoveOut, Description: "Full clean after moving out, cabinets and appliances included.", BasePrice: 280, DurationHours: 4},
	{Name: "Post-Construction Cleaning", Type: models.ServiceTypePostConstruction, Description: "Dust and debris removal after renovation work.", BasePrice: 350, DurationHours: 6},
}

// aLaCarteServices are priced per unit and added through the wizard cart.
var aLaCarteServices = []models.Service{
	{Name: "Inside Refrigerator", ALaCartePrice: 35},
	{Name: "Inside Oven", ALaCartePrice: 30},
	{Name: "Interior Windows", ALaCartePrice: 25},
	{Name: "Laundry & Fold", ALaCartePrice: 20},
	{Name: "Baseboards Detail", ALaCartePrice: 40},
	{Name: "Inside Cabinets", ALaCartePrice: 45},
	{Name: "Garage Sweep", ALaCartePrice: 35},
	{Name: "Blinds Dusting", ALaCartePrice: 25},
}

// basePriceMatrix maps frequency to the base price per house size band, in
// band order. More frequent cleans are cheaper per visit.
var basePriceMatrix = map[string][]float64{
	"weekly":        {125, 150, 175, 200, 225, 250, 275, 325},
	"bi_weekly":     {135, 160, 190, 215, 240, 265, 290, 340},
	"every_3_weeks": {145, 170, 200, 230, 255, 280, 310, 360},
	"monthly":       {155, 185, 215, 245, 270, 300, 330, 385},
	"one_time":      {250, 295, 340, 385, 430, 475, 520, 600},
}

// Catalog populates the service catalog if it is empty.
func Catalog(ctx context.Context, repo catalogRepo.ServiceRepository) error {
	logger := utils.GetLogger()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, svc := range standardServices {
		svc.CreatedAt = now
		if err := repo.Create(ctx, &svc); err != nil {
			return err
		}
	}
	for _, svc := range aLaCarteServices {
		svc.Type = models.ServiceTypeALaCarte
		svc.IsALaCarte = true
		svc.CreatedAt = now
		if err := repo.Create(ctx, &svc); err != nil {
			return err
		}
	}
	logger.Info("Service catalog seeded",
		zap.Int("standard", len(standardServices)),
		zap.Int("aLaCarte", len(aLaCarteServices)))
	return nil
}

// Pricing populates the price matrix if it is empty.
func Pricing(ctx context.Context, repo pricingRepo.PricingRepository) error {
	logger := utils.GetLogger()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := 0
	for freq, prices := range basePriceMatrix {
		for i, band := range models.HouseSizeBands {
			entry := pricingRepo.PricingEntry{
				HouseSize: band,
				Frequency: freq,
				BasePrice: prices[i],
			}
			if err := repo.Upsert(ctx, entry); err != nil {
				return err
			}
			rows++
		}
	}
	logger.Info("Pricing matrix seeded", zap.Int("rows", rows))
	return nil
}
