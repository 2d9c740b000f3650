package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth"
	"github.com/MuhammadZainDev/VOQ-backend/internal/logger"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	u, err := h.service.Login(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		// Same status and body whether the email is unknown or the
		// password is wrong.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid Credentials"})
			return
		}
		logger.Error("login failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if err := h.startSession(c, u); err != nil {
		logger.Error("session save failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Session save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "User logged in successfully",
		"role": u.Role,
	})
}
