package models

import "time"

// TimeSlot is a bookable appointment window on a given date.
// Times are "HH:MM" 24-hour strings, dates are "YYYY-MM-DD".
type TimeSlot struct {
	ID          string    `bson:"id" json:"id"`
	Date        string    `bson:"date" json:"date"`
	StartTime   string    `bson:"start_time" json:"start_time"`
	EndTime     string    `bson:"end_time" json:"end_time"`
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Window returns the "start-end" string used on booking records.
func (t TimeSlot) Window() string {
	return t.StartTime + "-" + t.EndTime
}
