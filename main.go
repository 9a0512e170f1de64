// File: cyfairmaids/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cyfairmaids/config"
	"cyfairmaids/cron"
	"cyfairmaids/database"
	bookingRepo "cyfairmaids/database/repository/booking"
	catalogRepo "cyfairmaids/database/repository/catalog"
	pricingRepo "cyfairmaids/database/repository/pricing"
	timeslotRepo "cyfairmaids/database/repository/timeslot"
	"cyfairmaids/database/seed"
	"cyfairmaids/handlers"
	"cyfairmaids/middleware"
	"cyfairmaids/routes"
	"cyfairmaids/services/notification"
	"cyfairmaids/services/schedule"
	"cyfairmaids/services/tasks"
	"cyfairmaids/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitWizardCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Seed reference data on first boot.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Catalog(ctx, catalogRepo.NewMongoServiceRepo()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed service catalog: %v", err)
	}
	if err := seed.Pricing(ctx, pricingRepo.NewMongoPricingRepo()); err != nil {
		logger.Sugar().Fatalf("main: failed to seed pricing matrix: %v", err)
	}
	cancel()

	// Service graph behind the handler layer.
	handlers.InitServices()

	// Keep the booking calendar topped up: once at boot, then nightly.
	scheduleSvc := schedule.NewDefaultScheduleService(timeslotRepo.NewMongoTimeSlotRepo())
	horizonCtx, horizonCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := scheduleSvc.EnsureHorizon(horizonCtx); err != nil {
		logger.Sugar().Warnf("main: failed to extend slot horizon: %v", err)
	}
	horizonCancel()
	slotCron := cron.InitSlotScheduler(scheduleSvc)
	defer slotCron.Stop()

	// Background reminder worker.
	reminderHandler := tasks.NewReminderHandler(
		bookingRepo.NewMongoBookingRepo(),
		notification.NewMailer(),
	)
	cron.InitReminderWorker(reminderHandler)

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
