package handlers

import (
	userRepo "avira/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the endpoint handlers wired in main and passed
// to route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler   gin.HandlerFunc
	SignInUserHandler     gin.HandlerFunc
	RevokeTokenHandler    gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Consultant endpoints.
	ListConsultantsHandler    gin.HandlerFunc
	GetConsultantHandler      gin.HandlerFunc
	GetConsultantDatesHandler gin.HandlerFunc
	GetConsultantSlotsHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	ListMyBookingsHandler      gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// Chat endpoint (open).
	ChatHandler gin.HandlerFunc

	// Simulated health data endpoints.
	HealthTrendsHandler         gin.HandlerFunc
	HealthSnapshotHandler       gin.HandlerFunc
	HealthRecommendationHandler gin.HandlerFunc
}
