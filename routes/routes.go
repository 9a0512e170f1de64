package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cyfairmaids/handlers"
	"cyfairmaids/middleware"
)

// RegisterPublicRoutes registers the endpoints the booking site calls
// without authentication.
func RegisterPublicRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/services", handlers.ListServices)
		api.GET("/services/standard", handlers.ListStandardServices)
		api.GET("/services/a-la-carte", handlers.ListALaCarteServices)
		api.GET("/services/:serviceID", handlers.GetService)
		api.GET("/available-dates", handlers.GetAvailableDates)
		api.GET("/time-slots", handlers.GetTimeSlots)
		api.GET("/pricing/:houseSize/:frequency", handlers.GetPricing)
		api.POST("/validate-promo-code", handlers.ValidatePromoCode)
		api.GET("/faqs", handlers.ListFAQs)
		api.POST("/tickets", handlers.CreateTicket)

		api.POST("/bookings/guest", handlers.SubmitGuestBooking)
		api.POST("/bookings", middleware.JWTAuthCustomerMiddleware(), handlers.SubmitBooking)
		api.GET("/bookings/:bookingID", handlers.GetBooking)
		api.POST("/process-payment/:bookingID", handlers.ProcessPayment)
	}
}

// RegisterWizardRoutes sets up the multi-step booking flow. Sessions are
// open to guests; ownership is the unguessable session ID.
func RegisterWizardRoutes(r *gin.Engine) {
	wiz := r.Group("/api/wizard")
	{
		wiz.POST("/session", handlers.StartWizardSession)
		wiz.GET("/session/:sessionID", handlers.GetWizardSession)
		wiz.DELETE("/session/:sessionID", handlers.CancelWizardSession)

		wiz.PUT("/session/:sessionID/house", handlers.SetHouseProfile)
		wiz.PUT("/session/:sessionID/rooms", handlers.SetRooms)
		wiz.PUT("/session/:sessionID/services", handlers.ToggleWizardService)
		wiz.POST("/session/:sessionID/cart", handlers.AddToCart)
		wiz.PUT("/session/:sessionID/cart", handlers.UpdateCartQuantity)
		wiz.PUT("/session/:sessionID/date", handlers.SelectDate)
		wiz.PUT("/session/:sessionID/slot", handlers.SelectTimeSlot)
		wiz.PUT("/session/:sessionID/contact", handlers.SetContactInfo)
		wiz.PUT("/session/:sessionID/instructions", handlers.SetInstructions)
		wiz.POST("/session/:sessionID/promo", handlers.ApplyPromo)
		wiz.DELETE("/session/:sessionID/promo", handlers.RemovePromo)

		wiz.POST("/session/:sessionID/next", handlers.NextStep)
		wiz.POST("/session/:sessionID/previous", handlers.PreviousStep)
		wiz.POST("/session/:sessionID/submit", handlers.SubmitWizard)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/admin-login", handlers.AdminLogin)

		auth.GET("/me", middleware.JWTAuthCustomerMiddleware(), handlers.GetProfile)
	}
}

// RegisterAdminRoutes sets up the console endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/stats", handlers.GetAdminStats)

		adminGroup.GET("/bookings", handlers.ListBookings)
		adminGroup.PATCH("/bookings/:bookingID", handlers.UpdateBooking)
		adminGroup.GET("/export/bookings", handlers.ExportBookings)

		adminGroup.GET("/services", handlers.ListAllServices)
		adminGroup.POST("/services", handlers.CreateService)
		adminGroup.DELETE("/services/:serviceID", handlers.DeleteService)

		adminGroup.GET("/pricing", handlers.GetPricingMatrix)
		adminGroup.PUT("/pricing", handlers.SetPricing)

		adminGroup.GET("/promo-codes", handlers.ListPromoCodes)
		adminGroup.POST("/promo-codes", handlers.CreatePromoCode)
		adminGroup.DELETE("/promo-codes/:promoID", handlers.DeletePromoCode)

		adminGroup.GET("/cleaners", handlers.ListCleaners)
		adminGroup.POST("/cleaners", handlers.CreateCleaner)
		adminGroup.DELETE("/cleaners/:cleanerID", handlers.DeleteCleaner)

		adminGroup.GET("/faqs", handlers.ListFAQs)
		adminGroup.POST("/faqs", handlers.CreateFAQ)
		adminGroup.DELETE("/faqs/:faqID", handlers.DeleteFAQ)

		adminGroup.GET("/tickets", handlers.ListTickets)
		adminGroup.PATCH("/tickets/:ticketID", handlers.UpdateTicket)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Cy-Fair Maids booking API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r)
	RegisterWizardRoutes(r)
	RegisterAuthRoutes(r)
	RegisterAdminRoutes(r)
}
