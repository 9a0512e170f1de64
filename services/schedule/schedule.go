// File: services/schedule/schedule.go
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"cyfairmaids/config"
	timeslotRepo "cyfairmaids/database/repository/timeslot"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// Appointment windows start on the even hours of the working day and run
// two hours each.
var slotStartHours = []int{8, 10, 12, 14, 16}

const slotDurationHours = 2

// ScheduleService manages the bookable calendar.
type ScheduleService interface {
	AvailableDates(ctx context.Context) ([]string, error)
	SlotsForDate(ctx context.Context, date string) ([]models.TimeSlot, error)
	ReserveSlot(ctx context.Context, date, window string) error
	EnsureHorizon(ctx context.Context) error
}

// DefaultScheduleService is the standard implementation over the time-slot
// repository.
type DefaultScheduleService struct {
	Repo timeslotRepo.TimeSlotRepository
}

// NewDefaultScheduleService wires a schedule service from its repository.
func NewDefaultScheduleService(repo timeslotRepo.TimeSlotRepository) *DefaultScheduleService {
	return &DefaultScheduleService{Repo: repo}
}

// GenerateSlots builds the slot windows for each of the given dates. It is
// pure so horizon maintenance can be tested without a database.
func GenerateSlots(dates []string) []models.TimeSlot {
	now := time.Now().UTC()
	slots := make([]models.TimeSlot, 0, len(dates)*len(slotStartHours))
	for _, date := range dates {
		for _, hour := range slotStartHours {
			slots = append(slots, models.TimeSlot{
				Date:        date,
				StartTime:   fmt.Sprintf("%02d:00", hour),
				EndTime:     fmt.Sprintf("%02d:00", hour+slotDurationHours),
				IsAvailable: true,
				CreatedAt:   now,
			})
		}
	}
	return slots
}

// DateRange returns the date strings from the day after `after` through
// `horizonDays` days out from `from`, inclusive.
func DateRange(from, after time.Time, horizonDays int) []string {
	end := from.AddDate(0, 0, horizonDays)
	var dates []string
	for d := after.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}

// AvailableDates lists the dates that still have at least one open slot.
func (s *DefaultScheduleService) AvailableDates(ctx context.Context) ([]string, error) {
	return s.Repo.AvailableDates(ctx)
}

// SlotsForDate lists the open slots on one date.
func (s *DefaultScheduleService) SlotsForDate(ctx context.Context, date string) ([]models.TimeSlot, error) {
	return s.Repo.GetAvailableByDate(ctx, date)
}

// ReserveSlot marks a window taken. window is the "start-end" string carried
// on the booking.
func (s *DefaultScheduleService) ReserveSlot(ctx context.Context, date, window string) error {
	start, _, _ := strings.Cut(window, "-")
	return s.Repo.MarkUnavailable(ctx, date, start)
}

// EnsureHorizon extends the calendar so slots exist for every day up to the
// configured horizon. It only appends past the latest existing date, so
// already-reserved slots are never regenerated.
func (s *DefaultScheduleService) EnsureHorizon(ctx context.Context) error {
	logger := utils.GetLogger()

	horizon := config.AppConfig.SlotHorizonDays
	if horizon <= 0 {
		horizon = 30
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	after := today
	if latest, err := s.Repo.LatestDate(ctx); err == nil && latest != "" {
		if parsed, perr := time.Parse("2006-01-02", latest); perr == nil && parsed.After(after) {
			after = parsed
		}
	}

	dates := DateRange(today, after, horizon)
	if len(dates) == 0 {
		return nil
	}

	slots := GenerateSlots(dates)
	if err := s.Repo.CreateMany(ctx, slots); err != nil {
		logger.Error("Failed to extend slot horizon", zap.Error(err))
		return err
	}
	logger.Info("Slot horizon extended",
		zap.Int("days", len(dates)),
		zap.Int("slots", len(slots)))
	return nil
}
