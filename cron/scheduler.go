package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"cyfairmaids/services/schedule"
)

// InitSlotScheduler extends the booking calendar nightly so the configured
// horizon of open time slots is always available.
func InitSlotScheduler(scheduleSvc schedule.ScheduleService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("15 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := scheduleSvc.EnsureHorizon(ctx); err != nil {
			log.Printf("[SlotScheduler] Failed to extend slot horizon: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[SlotScheduler] Failed to register nightly job: %v", err)
	}

	c.Start()
	log.Println("[SlotScheduler] Nightly slot horizon job registered")
	return c
}
