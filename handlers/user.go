package handlers

import (
	"net/http"

	"avira/models"
	"avira/services/user"
	"avira/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration and session endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) SignInHandler(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload", err.Error())
		return
	}

	resp, err := h.Service.SignIn(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "invalid email or password")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.Service.RevokeToken(c.Request.Context(), userID); err != nil {
		utils.GetLogger().Error("failed to revoke token", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token revoked"})
}

func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcm_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	userID := c.GetString("userID")
	if err := h.Service.UpdateFCMToken(c.Request.Context(), userID, req.FCMToken); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update device token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device token updated"})
}
