// File: services/tasks/reminder.go
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"cyfairmaids/config"
	bookingRepo "cyfairmaids/database/repository/booking"
	"cyfairmaids/models"
	"cyfairmaids/utils"
)

// TypeBookingReminder is the queue task type for day-before reminders.
const TypeBookingReminder = "booking:reminder"

// reminderHour is the local hour the reminder goes out on the day before
// the appointment.
const reminderHour = 9

// ReminderPayload is the queued task body.
type ReminderPayload struct {
	BookingID string `json:"booking_id"`
	Email     string `json:"email"`
}

// RedisOpt returns the asynq connection options for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	cfg := config.AppConfig
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderQueue,
	}
}

// ReminderScheduler enqueues reminder tasks for paid bookings.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler opens an asynq client on the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(RedisOpt())}
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// ScheduleReminder queues the reminder to fire the morning before the
// appointment. Appointments within a day get no reminder.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, booking *models.Booking, email string) error {
	date, err := time.Parse("2006-01-02", booking.BookingDate)
	if err != nil {
		return fmt.Errorf("unparseable booking date %q: %w", booking.BookingDate, err)
	}
	fireAt := date.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Info("Appointment too soon for a reminder",
			zap.String("bookingID", booking.ID))
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{BookingID: booking.ID, Email: email})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second))
	if err != nil {
		return err
	}
	utils.GetLogger().Info("Reminder scheduled",
		zap.String("bookingID", booking.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// Mailer is the slice of the notification service the reminder handler
// needs.
type Mailer interface {
	SendBookingReminder(booking *models.Booking, email string) error
}

// ReminderHandler processes queued reminder tasks.
type ReminderHandler struct {
	Bookings bookingRepo.BookingRepository
	Mailer   Mailer
}

// NewReminderHandler wires the handler from its dependencies.
func NewReminderHandler(bookings bookingRepo.BookingRepository, mailer Mailer) *ReminderHandler {
	return &ReminderHandler{Bookings: bookings, Mailer: mailer}
}

// ProcessTask sends the reminder unless the booking was cancelled in the
// meantime.
func (h *ReminderHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("bad reminder payload: %w: %v", asynq.SkipRetry, err)
	}

	booking, err := h.Bookings.GetByID(ctx, payload.BookingID)
	if err != nil {
		return fmt.Errorf("booking %s not found: %w", payload.BookingID, err)
	}
	if booking.Status == models.BookingStatusCancelled {
		utils.GetLogger().Info("Skipping reminder for cancelled booking",
			zap.String("bookingID", booking.ID))
		return nil
	}

	if err := h.Mailer.SendBookingReminder(booking, payload.Email); err != nil {
		return err
	}
	utils.GetLogger().Info("Reminder sent", zap.String("bookingID", booking.ID))
	return nil
}
