package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth"
	"github.com/MuhammadZainDev/VOQ-backend/internal/logger"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Number   string `json:"number"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request"})
		return
	}

	u, err := h.service.Signup(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Number,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
			return
		}
		logger.Error("signup failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	// The user row already exists at this point; a session failure is
	// reported as-is and not rolled back.
	if err := h.startSession(c, u); err != nil {
		logger.Error("session save failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Session save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User registered successfully"})
}
