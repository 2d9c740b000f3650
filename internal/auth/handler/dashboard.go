package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/logger"
	"github.com/MuhammadZainDev/VOQ-backend/internal/middleware"
	"github.com/MuhammadZainDev/VOQ-backend/internal/user"
)

// CurrentUser echoes the session payload; it does not re-read the user
// record from the store.
func (h *Handler) CurrentUser(c *gin.Context) {
	p, ok := middleware.FromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":   p.UserID,
			"role": p.Role,
		},
	})
}

func (h *Handler) UserDashboard(c *gin.Context) {
	p, ok := middleware.FromContext(c.Request.Context())
	if !ok || p.Role != string(user.RoleUser) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Welcome to User Dashboard"})
}

// AdminDashboard lists every user with the password hash excluded.
func (h *Handler) AdminDashboard(c *gin.Context) {
	p, ok := middleware.FromContext(c.Request.Context())
	if !ok || p.Role != string(user.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"msg": "Access denied"})
		return
	}

	users, err := h.users.ListSafe(c.Request.Context())
	if err != nil {
		logger.Error("list users failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if users == nil {
		users = []user.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Welcome to Admin Dashboard",
		"users": users,
	})
}
