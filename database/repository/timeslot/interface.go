package timeslotRepo

import (
	"context"

	"cyfairmaids/models"
)

// TimeSlotRepository manages the bookable appointment windows.
type TimeSlotRepository interface {
	CreateMany(ctx context.Context, slots []models.TimeSlot) error
	GetAvailableByDate(ctx context.Context, date string) ([]models.TimeSlot, error)
	AvailableDates(ctx context.Context) ([]string, error)
	MarkUnavailable(ctx context.Context, date, startTime string) error
	LatestDate(ctx context.Context) (string, error)
	Count(ctx context.Context) (int64, error)
}
