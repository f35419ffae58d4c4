package handlers

import (
	"net/http"

	"avira/services/booking"
	"avira/services/consultant"
	"avira/utils"

	"github.com/gin-gonic/gin"
)

// ConsultantHandler exposes the anonymous consultant directory and the
// availability views used by the booking flow.
type ConsultantHandler struct {
	Service    consultant.ConsultantService
	BookingSvc booking.BookingService
}

func NewConsultantHandler(svc consultant.ConsultantService, bookingSvc booking.BookingService) *ConsultantHandler {
	return &ConsultantHandler{Service: svc, BookingSvc: bookingSvc}
}

func (h *ConsultantHandler) ListHandler(c *gin.Context) {
	consultants, err := h.Service.ListAvailable()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load consultants", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultants": consultants})
}

func (h *ConsultantHandler) GetByIDHandler(c *gin.Context) {
	consultant, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load consultant", "")
		return
	}
	if consultant == nil {
		utils.JSONError(c, http.StatusNotFound, "Consultant not found", "")
		return
	}
	c.JSON(http.StatusOK, consultant)
}

// GetDatesHandler lists the selectable dates within the booking horizon.
func (h *ConsultantHandler) GetDatesHandler(c *gin.Context) {
	dates, err := h.BookingSvc.GetSelectableDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute selectable dates", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetSlotsHandler resolves the slot view for one date (?date=YYYY-MM-DD).
func (h *ConsultantHandler) GetSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date parameter", "expected ?date=YYYY-MM-DD")
		return
	}

	view, err := h.BookingSvc.GetSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		if be, ok := err.(*booking.BookingError); ok && be.Code == booking.CodeValidationError {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", be.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute slots", "")
		return
	}
	c.JSON(http.StatusOK, view)
}
