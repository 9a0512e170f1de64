// File: services/admin/export.go
package admin

import (
	"context"
	"fmt"

	"github.com/gocarina/gocsv"
)

// bookingRow is the flattened CSV shape of one booking.
type bookingRow struct {
	ID            string  `csv:"id"`
	CustomerID    string  `csv:"customer_id"`
	BookingDate   string  `csv:"booking_date"`
	TimeSlot      string  `csv:"time_slot"`
	HouseSize     string  `csv:"house_size"`
	Frequency     string  `csv:"frequency"`
	Subtotal      float64 `csv:"subtotal"`
	Discount      float64 `csv:"discount"`
	TotalAmount   float64 `csv:"total_amount"`
	PromoCode     string  `csv:"promo_code"`
	Status        string  `csv:"status"`
	PaymentStatus string  `csv:"payment_status"`
	CleanerID     string  `csv:"cleaner_id"`
	CreatedAt     string  `csv:"created_at"`
}

// ExportBookingsCSV renders every booking as a CSV document for download.
func (s *DefaultAdminService) ExportBookingsCSV(ctx context.Context) ([]byte, error) {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]bookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, bookingRow{
			ID:            b.ID,
			CustomerID:    b.CustomerID,
			BookingDate:   b.BookingDate,
			TimeSlot:      b.TimeSlot,
			HouseSize:     b.HouseSize,
			Frequency:     b.Frequency,
			Subtotal:      b.Subtotal,
			Discount:      b.Discount,
			TotalAmount:   b.TotalAmount,
			PromoCode:     b.PromoCode,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			CleanerID:     b.CleanerID,
			CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render bookings CSV: %w", err)
	}
	return []byte(out), nil
}
