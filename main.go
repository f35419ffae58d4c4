package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avira/config"
	"avira/database"
	bookingRepoPkg "avira/database/repository/booking"
	consultantRepoPkg "avira/database/repository/consultant"
	userRepoPkg "avira/database/repository/user"
	"avira/handlers"
	"avira/middleware"
	"avira/routes"
	"avira/services/booking"
	"avira/services/consultant"
	"avira/services/health"
	"avira/services/notification"
	"avira/services/user"
	"avira/services/wellness"
	"avira/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(utils.CacheClient, utils.AuthCacheClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(logger))
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	consultantRepo := consultantRepoPkg.NewMongoConsultantRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	consultantService := &consultant.DefaultConsultantService{
		Repo: consultantRepo,
	}
	notificationService := notification.NewDefaultNotificationService()
	bookingService := &booking.DefaultBookingService{
		Repo:           bookingRepo,
		ConsultantRepo: consultantRepo,
		UserRepo:       userRepo,
		Notification:   notificationService,
		Cache:          utils.GetCacheClient(),
	}
	wellnessService := wellness.NewDefaultWellnessService(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	healthService := health.NewSimulatedHealthService()

	userHandler := handlers.NewUserHandler(userService)
	consultantHandler := handlers.NewConsultantHandler(consultantService, bookingService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	chatHandler := handlers.NewChatHandler(wellnessService)
	healthDataHandler := handlers.NewHealthDataHandler(healthService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:   userHandler.RegisterHandler,
		SignInUserHandler:     userHandler.SignInHandler,
		RevokeTokenHandler:    userHandler.RevokeTokenHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,

		// Consultant endpoints.
		ListConsultantsHandler:    consultantHandler.ListHandler,
		GetConsultantHandler:      consultantHandler.GetByIDHandler,
		GetConsultantDatesHandler: consultantHandler.GetDatesHandler,
		GetConsultantSlotsHandler: consultantHandler.GetSlotsHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListMyBookingsHandler:      bookingHandler.ListMyBookingsHandler,
		CreatePaymentIntentHandler: bookingHandler.CreatePaymentIntentHandler,

		// Chat endpoint.
		ChatHandler: chatHandler.ChatHandler,

		// Simulated health data endpoints.
		HealthTrendsHandler:         healthDataHandler.TrendsHandler,
		HealthSnapshotHandler:       healthDataHandler.SnapshotHandler,
		HealthRecommendationHandler: healthDataHandler.RecommendationHandler,
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
