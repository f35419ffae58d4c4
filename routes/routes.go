package routes

import (
	"net/http"
	"time"

	"avira/handlers"
	"avira/middleware"
	"avira/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.SignInUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.DELETE("/revoke", hb.RevokeTokenHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterConsultantRoutes registers the anonymous consultant directory
// and availability views.
func RegisterConsultantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultants")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListConsultantsHandler)
		api.GET("/:id", hb.GetConsultantHandler)
		api.GET("/:id/dates", hb.GetConsultantDatesHandler)
		api.GET("/:id/slots", hb.GetConsultantSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.POST("/:id/payment-intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterChatRoute registers the wellness chat endpoint. Chat is open so
// students can reach support without an account.
func RegisterChatRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatHandler)
}

// RegisterHealthDataRoutes registers the simulated wellness data endpoints.
func RegisterHealthDataRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/health")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/trends", hb.HealthTrendsHandler)
		api.GET("/snapshot", hb.HealthSnapshotHandler)
		api.GET("/recommendation", hb.HealthRecommendationHandler)
	}
}

// RegisterHealthRoute registers a liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Avira",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterConsultantRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoute(r, hb)
	RegisterHealthDataRoutes(r, hb)
	RegisterHealthRoute(r)
}
