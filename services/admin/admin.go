// File: services/admin/admin.go
package admin

import (
	"context"
	"time"

	bookingRepo "cyfairmaids/database/repository/booking"
	cleanerRepo "cyfairmaids/database/repository/cleaner"
	customerRepo "cyfairmaids/database/repository/customer"
	faqRepo "cyfairmaids/database/repository/faq"
	ticketRepo "cyfairmaids/database/repository/ticket"
	"cyfairmaids/models"
)

// AdminService backs the admin console: dashboard stats, staff, FAQs and
// support tickets.
type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)

	CreateCleaner(ctx context.Context, input *models.CleanerCreate) (*models.Cleaner, error)
	ListCleaners(ctx context.Context) ([]models.Cleaner, error)
	DeleteCleaner(ctx context.Context, id string) error

	CreateFAQ(ctx context.Context, input *models.FAQCreate) (*models.FAQ, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	DeleteFAQ(ctx context.Context, id string) error

	OpenTicket(ctx context.Context, input *models.TicketCreate) (*models.SupportTicket, error)
	ListTickets(ctx context.Context) ([]models.SupportTicket, error)
	UpdateTicketStatus(ctx context.Context, id, status string) error

	ExportBookingsCSV(ctx context.Context) ([]byte, error)
}

// DefaultAdminService is the standard implementation.
type DefaultAdminService struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Cleaners  cleanerRepo.CleanerRepository
	FAQs      faqRepo.FAQRepository
	Tickets   ticketRepo.TicketRepository
}

// NewDefaultAdminService wires an admin service from its repositories.
func NewDefaultAdminService(
	bookings bookingRepo.BookingRepository,
	customers customerRepo.CustomerRepository,
	cleaners cleanerRepo.CleanerRepository,
	faqs faqRepo.FAQRepository,
	tickets ticketRepo.TicketRepository,
) *DefaultAdminService {
	return &DefaultAdminService{
		Bookings:  bookings,
		Customers: customers,
		Cleaners:  cleaners,
		FAQs:      faqs,
		Tickets:   tickets,
	}
}

// Stats assembles the dashboard summary. Revenue counts paid bookings only.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{}
	var err error

	if stats.TotalBookings, err = s.Bookings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingBookings, err = s.Bookings.CountByStatus(ctx, models.BookingStatusPending); err != nil {
		return nil, err
	}
	if stats.ConfirmedBookings, err = s.Bookings.CountByStatus(ctx, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	if stats.CompletedBookings, err = s.Bookings.CountByStatus(ctx, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.Bookings.PaidRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.Customers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveCleaners, err = s.Cleaners.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.Tickets.CountOpen(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *DefaultAdminService) CreateCleaner(ctx context.Context, input *models.CleanerCreate) (*models.Cleaner, error) {
	cleaner := &models.Cleaner{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Cleaners.Create(ctx, cleaner); err != nil {
		return nil, err
	}
	return cleaner, nil
}

func (s *DefaultAdminService) ListCleaners(ctx context.Context) ([]models.Cleaner, error) {
	return s.Cleaners.GetAll(ctx)
}

func (s *DefaultAdminService) DeleteCleaner(ctx context.Context, id string) error {
	return s.Cleaners.Delete(ctx, id)
}

func (s *DefaultAdminService) CreateFAQ(ctx context.Context, input *models.FAQCreate) (*models.FAQ, error) {
	faq := &models.FAQ{
		Question:  input.Question,
		Answer:    input.Answer,
		Category:  input.Category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.FAQs.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *DefaultAdminService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.FAQs.GetAll(ctx)
}

func (s *DefaultAdminService) DeleteFAQ(ctx context.Context, id string) error {
	return s.FAQs.Delete(ctx, id)
}

func (s *DefaultAdminService) OpenTicket(ctx context.Context, input *models.TicketCreate) (*models.SupportTicket, error) {
	ticket := &models.SupportTicket{
		Email:   input.Email,
		Name:    input.Name,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.TicketStatusOpen,
	}
	if err := s.Tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *DefaultAdminService) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return s.Tickets.GetAll(ctx)
}

func (s *DefaultAdminService) UpdateTicketStatus(ctx context.Context, id, status string) error {
	return s.Tickets.UpdateStatus(ctx, id, status)
}
