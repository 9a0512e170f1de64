package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyfairmaids/models"
)

type fakeSlotRepo struct {
	markedDate  string
	markedStart string
}

func (r *fakeSlotRepo) CreateMany(ctx context.Context, slots []models.TimeSlot) error { return nil }
func (r *fakeSlotRepo) GetAvailableByDate(ctx context.Context, date string) ([]models.TimeSlot, error) {
	return nil, nil
}
func (r *fakeSlotRepo) AvailableDates(ctx context.Context) ([]string, error) { return nil, nil }
func (r *fakeSlotRepo) MarkUnavailable(ctx context.Context, date, startTime string) error {
	r.markedDate = date
	r.markedStart = startTime
	return nil
}
func (r *fakeSlotRepo) LatestDate(ctx context.Context) (string, error) { return "", nil }
func (r *fakeSlotRepo) Count(ctx context.Context) (int64, error)       { return 0, nil }

func TestGenerateSlotsFiveWindowsPerDay(t *testing.T) {
	slots := GenerateSlots([]string{"2026-09-15"})
	require.Len(t, slots, 5)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
		assert.True(t, s.IsAvailable)
		assert.Equal(t, "2026-09-15", s.Date)
	}
	assert.Equal(t, []string{"08:00", "10:00", "12:00", "14:00", "16:00"}, starts)
}

func TestGenerateSlotsTwoHourWindows(t *testing.T) {
	slots := GenerateSlots([]string{"2026-09-15"})
	for _, s := range slots {
		start, err := time.Parse("15:04", s.StartTime)
		require.NoError(t, err)
		end, err := time.Parse("15:04", s.EndTime)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, end.Sub(start))
	}
}

func TestGenerateSlotsMultipleDates(t *testing.T) {
	slots := GenerateSlots([]string{"2026-09-15", "2026-09-16", "2026-09-17"})
	assert.Len(t, slots, 15)
}

func TestDateRangeStartsAfterLatest(t *testing.T) {
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	latest := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	dates := DateRange(from, latest, 10)
	require.NotEmpty(t, dates)
	assert.Equal(t, "2026-09-06", dates[0])
	assert.Equal(t, "2026-09-10", dates[len(dates)-1])
}

func TestDateRangeFullHorizonWhenEmpty(t *testing.T) {
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	dates := DateRange(from, from, 30)
	require.Len(t, dates, 30)
	assert.Equal(t, "2026-09-01", dates[0])
	assert.Equal(t, "2026-09-30", dates[len(dates)-1])
}

func TestReserveSlotMarksWindowStart(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := NewDefaultScheduleService(repo)

	require.NoError(t, svc.ReserveSlot(context.Background(), "2026-09-15", "08:00-10:00"))
	assert.Equal(t, "2026-09-15", repo.markedDate)
	assert.Equal(t, "08:00", repo.markedStart)
}

func TestDateRangeEmptyWhenHorizonCovered(t *testing.T) {
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	latest := from.AddDate(0, 0, 30)

	dates := DateRange(from, latest, 30)
	assert.Empty(t, dates)
}
