// File: handlers/services.go
package handlers

import (
	bookingRepo "cyfairmaids/database/repository/booking"
	catalogRepo "cyfairmaids/database/repository/catalog"
	cleanerRepo "cyfairmaids/database/repository/cleaner"
	customerRepo "cyfairmaids/database/repository/customer"
	faqRepo "cyfairmaids/database/repository/faq"
	pricingRepo "cyfairmaids/database/repository/pricing"
	promoRepo "cyfairmaids/database/repository/promo"
	ticketRepo "cyfairmaids/database/repository/ticket"
	timeslotRepo "cyfairmaids/database/repository/timeslot"
	"cyfairmaids/services/admin"
	"cyfairmaids/services/booking"
	"cyfairmaids/services/catalog"
	"cyfairmaids/services/customer"
	"cyfairmaids/services/notification"
	"cyfairmaids/services/pricing"
	"cyfairmaids/services/promo"
	"cyfairmaids/services/schedule"
	"cyfairmaids/services/tasks"
	"cyfairmaids/services/wizard"
	"cyfairmaids/utils"
)

// The handler layer shares one instance of each service. InitServices must
// run after config, database and cache initialization, before routes are
// served.
var (
	CatalogService  catalog.CatalogService
	PricingService  pricing.PricingService
	PromoService    promo.PromoService
	ScheduleService schedule.ScheduleService
	BookingService  booking.BookingService
	CustomerService customer.CustomerService
	AdminService    admin.AdminService
	WizardService   wizard.WizardService
)

// InitServices wires the full service graph over the Mongo repositories and
// the Redis-backed session store.
func InitServices() {
	bookings := bookingRepo.NewMongoBookingRepo()
	services := catalogRepo.NewMongoServiceRepo()
	cleaners := cleanerRepo.NewMongoCleanerRepo()
	customers := customerRepo.NewMongoCustomerRepo()
	faqs := faqRepo.NewMongoFAQRepo()
	pricingMatrix := pricingRepo.NewMongoPricingRepo()
	promos := promoRepo.NewMongoPromoRepo()
	tickets := ticketRepo.NewMongoTicketRepo()
	timeslots := timeslotRepo.NewMongoTimeSlotRepo()

	CatalogService = catalog.NewDefaultCatalogService(services)
	PricingService = pricing.NewDefaultPricingService(pricingMatrix)
	PromoService = promo.NewDefaultPromoService(promos)
	ScheduleService = schedule.NewDefaultScheduleService(timeslots)
	CustomerService = customer.NewDefaultCustomerService(customers, utils.GetAuthCacheClient())
	AdminService = admin.NewDefaultAdminService(bookings, customers, cleaners, faqs, tickets)

	mailer := notification.NewMailer()
	reminders := tasks.NewReminderScheduler()

	bookingSvc := booking.NewDefaultBookingService(
		bookings, customers, CatalogService, PricingService, PromoService,
		ScheduleService, mailer, reminders)
	BookingService = bookingSvc

	WizardService = wizard.NewDefaultWizardService(
		wizard.NewRedisSessionStore(),
		PricingService, CatalogService, PromoService,
		bookingSvc, bookingSvc)
}
