package handlers

import (
	"net/http"

	"avira/models"
	"avira/services/wellness"
	"avira/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the wellness chat endpoint. The endpoint is open
// (no bearer token) and always answers 200 with a non-empty response;
// model failures degrade to the fallback responder inside the service.
type ChatHandler struct {
	Service wellness.WellnessService
}

func NewChatHandler(svc wellness.WellnessService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

func (h *ChatHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat payload", err.Error())
		return
	}
	if req.Message == "" {
		utils.JSONError(c, http.StatusBadRequest, "Message is required", "")
		return
	}

	resp := h.Service.Respond(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
