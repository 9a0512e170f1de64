package models

import "time"

// Cleaner is a staff member who can be assigned to bookings.
type Cleaner struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"first_name" json:"first_name"`
	LastName  string    `bson:"last_name" json:"last_name"`
	Phone     string    `bson:"phone" json:"phone"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// CleanerCreate is the admin payload for adding a cleaner.
type CleanerCreate struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

// FAQ is a public question/answer entry.
type FAQ struct {
	ID        string    `bson:"id" json:"id"`
	Question  string    `bson:"question" json:"question"`
	Answer    string    `bson:"answer" json:"answer"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// FAQCreate is the admin payload for adding a FAQ.
type FAQCreate struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
}

// Support ticket statuses.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// SupportTicket is a customer support request.
type SupportTicket struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TicketCreate is the public payload for opening a ticket.
type TicketCreate struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalCustomers    int64   `json:"total_customers"`
	ActiveCleaners    int64   `json:"active_cleaners"`
	OpenTickets       int64   `json:"open_tickets"`
}
