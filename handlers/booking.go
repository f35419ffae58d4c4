package handlers

import (
	"errors"
	"net/http"

	"avira/models"
	"avira/services/booking"
	"avira/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation and retrieval.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler creates a booking. Per the API contract the
// endpoint answers 200 with success=true, or 400 with success=false and an
// error message for any validation or business failure.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CreateBookingResponse{
			Success: false,
			Error:   "Invalid booking payload: " + err.Error(),
		})
		return
	}

	userID := c.GetString("userID")
	created, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			h.Logger.Warn("booking rejected",
				zap.String("code", be.Code),
				zap.String("consultantID", req.ConsultantID),
			)
			c.JSON(http.StatusBadRequest, models.CreateBookingResponse{
				Success: false,
				Error:   be.Message,
			})
			return
		}
		h.Logger.Error("booking failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.CreateBookingResponse{
			Success: false,
			Error:   "Failed to create booking",
		})
		return
	}

	c.JSON(http.StatusOK, models.CreateBookingResponse{
		Success:   true,
		BookingID: created.ID,
		Message:   "Booking created successfully",
	})
}

func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	clientSecret, err := h.Service.CreatePaymentIntent(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) && be.Code == booking.CodeValidationError {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("payment intent failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}
