package models

import "time"

// Booking status lifecycle.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Payment status lifecycle.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// House size bands and cleaning frequencies used as pricing keys.
var (
	HouseSizeBands = []string{
		"1000-1500", "1500-2000", "2000-2500", "2500-3000",
		"3000-3500", "3500-4000", "4000-4500", "5000+",
	}
	Frequencies = []string{"one_time", "monthly", "every_3_weeks", "bi_weekly", "weekly"}
)

// ValidHouseSize reports whether s is a known square-footage band.
func ValidHouseSize(s string) bool {
	for _, b := range HouseSizeBands {
		if b == s {
			return true
		}
	}
	return false
}

// ValidFrequency reports whether f is a known cleaning frequency.
func ValidFrequency(f string) bool {
	for _, v := range Frequencies {
		if v == f {
			return true
		}
	}
	return false
}

// BookingLine references a catalog service with a quantity.
type BookingLine struct {
	ServiceID string `bson:"service_id" json:"service_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Booking is a confirmed (or pending-payment) booking record.
type Booking struct {
	ID                  string        `bson:"id" json:"id"`
	CustomerID          string        `bson:"customer_id" json:"customer_id"`
	HouseSize           string        `bson:"house_size" json:"house_size"`
	Frequency           string        `bson:"frequency" json:"frequency"`
	BasePrice           float64       `bson:"base_price" json:"base_price"`
	Rooms               RoomSelection `bson:"rooms" json:"rooms"`
	Services            []BookingLine `bson:"services" json:"services"`
	ALaCarteServices    []BookingLine `bson:"a_la_carte_services" json:"a_la_carte_services"`
	BookingDate         string        `bson:"booking_date" json:"booking_date"`
	TimeSlot            string        `bson:"time_slot" json:"time_slot"`
	Subtotal            float64       `bson:"subtotal" json:"subtotal"`
	Discount            float64       `bson:"discount" json:"discount"`
	TotalAmount         float64       `bson:"total_amount" json:"total_amount"`
	PromoCode           string        `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	Status              string        `bson:"status" json:"status"`
	PaymentStatus       string        `bson:"payment_status" json:"payment_status"`
	CleanerID           string        `bson:"cleaner_id,omitempty" json:"cleaner_id,omitempty"`
	SpecialInstructions string        `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingSubmission is the wire payload assembled by the wizard (or sent by
// an API client) to create a booking. Field names follow the backend's
// snake_case contract.
type BookingSubmission struct {
	Customer            CustomerInput `json:"customer"`
	HouseSize           string        `json:"house_size"`
	Frequency           string        `json:"frequency"`
	BasePrice           float64       `json:"base_price"`
	Rooms               RoomSelection `json:"rooms"`
	Services            []BookingLine `json:"services"`
	ALaCarteServices    []BookingLine `json:"a_la_carte_services"`
	BookingDate         string        `json:"booking_date"`
	TimeSlot            string        `json:"time_slot"`
	SpecialInstructions string        `json:"special_instructions,omitempty"`
	PromoCode           *string       `json:"promo_code"`
}

// BookingPatch is the admin payload for mutating a booking.
type BookingPatch struct {
	Status    *string `json:"status"`
	CleanerID *string `json:"cleaner_id"`
}
