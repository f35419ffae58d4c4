package handlers

import (
	"net/http"
	"strconv"

	"avira/services/health"

	"github.com/gin-gonic/gin"
)

// HealthDataHandler serves the simulated wellness data behind the
// dashboard charts and smartwatch views.
type HealthDataHandler struct {
	Service health.HealthService
}

func NewHealthDataHandler(svc health.HealthService) *HealthDataHandler {
	return &HealthDataHandler{Service: svc}
}

// TrendsHandler returns a random-walk trend series (?days=30).
func (h *HealthDataHandler) TrendsHandler(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 365 {
			days = parsed
		}
	}
	c.JSON(http.StatusOK, gin.H{"trends": h.Service.TrendSeries(days)})
}

// SnapshotHandler returns a synthetic smartwatch reading.
func (h *HealthDataHandler) SnapshotHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Snapshot())
}

// RecommendationHandler returns a threshold-driven nudge for a fresh snapshot.
func (h *HealthDataHandler) RecommendationHandler(c *gin.Context) {
	snapshot := h.Service.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"snapshot":       snapshot,
		"recommendation": h.Service.Recommendation(snapshot),
	})
}
