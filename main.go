// File: ecoclean/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoclean/backend"
	"ecoclean/config"
	"ecoclean/handlers"
	"ecoclean/middleware"
	"ecoclean/routes"
	bookingSvc "ecoclean/services/booking"
	catalogSvc "ecoclean/services/catalog"
	historySvc "ecoclean/services/history"
	inquirySvc "ecoclean/services/inquiry"
	notificationSvc "ecoclean/services/notification"
	pickupSvc "ecoclean/services/pickup"
	"ecoclean/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// Core backend client with the short-TTL response cache.
	backendClient := backend.NewClient(
		config.AppConfig.BackendBaseURL,
		time.Duration(config.AppConfig.BackendTimeoutSeconds)*time.Second,
		logger,
	)
	backendClient.UseRedisCache(utils.GetCacheClient(), utils.CacheTTL())

	// services.
	catalogService := &catalogSvc.CatalogService{Backend: backendClient, Logger: logger}
	historyService := &historySvc.HistoryService{Backend: backendClient, Logger: logger}
	bookingService := &bookingSvc.BookingService{Backend: backendClient, Logger: logger}
	pickupService := &pickupSvc.PickupService{Backend: backendClient, Storage: storageService, Logger: logger}
	inquiryService := &inquirySvc.InquiryService{Backend: backendClient, Logger: logger}
	notificationService := &notificationSvc.NotificationService{Backend: backendClient}

	paymentHandler := bookingSvc.NewPaymentHandler(logger, backendClient, &bookingSvc.StripeCheckout{
		SuccessURL: config.AppConfig.CheckoutSuccessURL,
		CancelURL:  config.AppConfig.CheckoutCancelURL,
	})

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentHandler)
	pickupHandler := handlers.NewPickupHandler(pickupService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Guest shell.
		ListServicesHandler:  catalogHandler.ListServices,
		SubmitInquiryHandler: inquiryHandler.Submit,

		// History/status views.
		HistoryHandler:   historyHandler.History,
		TrackHandler:     historyHandler.Track,
		DashboardHandler: historyHandler.Dashboard,
		RewardsHandler:   historyHandler.Rewards,

		// Booking flow.
		CreateBookingHandler: bookingHandler.Create,
		ListBookingsHandler:  bookingHandler.List,
		UpdateBookingHandler: bookingHandler.Update,
		DeleteBookingHandler: bookingHandler.Delete,
		PurchaseHandler:      bookingHandler.Purchase,

		// Pickup flow.
		CreatePickupHandler: pickupHandler.Create,
		ListPickupsHandler:  pickupHandler.List,
		UpdatePickupHandler: pickupHandler.Update,
		DeletePickupHandler: pickupHandler.Delete,

		// Inquiries and notifications.
		ListInquiriesHandler: inquiryHandler.List,
		NotificationsHandler: notificationHandler.Panel,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
